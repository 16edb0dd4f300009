package routes

import (
	"net/http"
	"time"

	"dentax/handlers"
	"dentax/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAppointmentRoutes registers the public appointment endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointmentOptions", hb.GetAppointmentOptions)
	r.GET("/appointmentSpecialty", hb.GetSpecialties)
}

// RegisterBookingRoutes registers the booking endpoints. Listing a user's
// bookings requires a bearer token; creation and single-booking reads are
// public, matching the original client contract.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/bookings", middleware.JWTAuthMiddleware(), hb.ListBookings)
	r.GET("/bookings/:id", hb.GetBooking)
	r.POST("/bookings", hb.CreateBooking)
}

// RegisterPaymentRoutes registers the Stripe payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", hb.CreatePaymentIntent)
	r.POST("/payment", hb.RecordPayment)
}

// RegisterUserRoutes registers the user and token endpoints. Promotion to
// admin goes through both guard stages.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/jwt", hb.IssueJWT)
	r.GET("/users", hb.ListUsers)
	r.GET("/users/admin/:email", hb.CheckAdmin)
	r.POST("/users", hb.CreateUser)
	r.PUT("/users/admin/:id",
		middleware.JWTAuthMiddleware(),
		middleware.AdminOnlyMiddleware(hb.UserRepo),
		hb.PromoteAdmin,
	)
}

// RegisterDoctorRoutes registers the admin-only doctor endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctors := r.Group("/doctors")
	doctors.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware(hb.UserRepo))
	{
		doctors.POST("", hb.AddDoctor)
		doctors.GET("", hb.ListDoctors)
		doctors.DELETE("/:id", hb.DeleteDoctor)
	}
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "server running")
	})
}

// RegisterMetricsRoute exposes the Prometheus scrape endpoint.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes wires CORS and every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
}
