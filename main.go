package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dentax/config"
	"dentax/database"
	appointmentRepo "dentax/database/repository/appointment"
	bookingRepo "dentax/database/repository/booking"
	doctorRepo "dentax/database/repository/doctor"
	paymentRepo "dentax/database/repository/payment"
	userRepoPkg "dentax/database/repository/user"
	"dentax/handlers"
	"dentax/middleware"
	"dentax/routes"
	"dentax/services/booking"
	"dentax/services/doctor"
	"dentax/services/payment"
	"dentax/services/user"
	"dentax/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	defer database.CloseDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.MetricsMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	optionRepo := appointmentRepo.NewMongoOptionRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	docRepo := doctorRepo.NewMongoDoctorRepo()
	payRepo := paymentRepo.NewMongoPaymentRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		OptionRepo:  optionRepo,
		BookingRepo: bkRepo,
		Cache:       utils.GetCacheClient(),
		Logger:      logger,
	}
	paymentService := &payment.DefaultPaymentService{
		PaymentRepo: payRepo,
		BookingRepo: bkRepo,
		Logger:      logger,
	}
	userService := &user.DefaultUserService{Repo: userRepo}
	doctorService := &doctor.DefaultDoctorService{Repo: docRepo}

	// handlers.
	appointmentHandler := handlers.NewAppointmentHandler(bookingService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	userHandler := handlers.NewUserHandler(userService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		GetAppointmentOptions: appointmentHandler.GetAppointmentOptions,
		GetSpecialties:        appointmentHandler.GetSpecialties,

		ListBookings:  bookingHandler.ListBookings,
		GetBooking:    bookingHandler.GetBooking,
		CreateBooking: bookingHandler.CreateBooking,

		CreatePaymentIntent: paymentHandler.CreatePaymentIntent,
		RecordPayment:       paymentHandler.RecordPayment,

		IssueJWT:     userHandler.IssueJWT,
		ListUsers:    userHandler.ListUsers,
		CheckAdmin:   userHandler.CheckAdmin,
		CreateUser:   userHandler.CreateUser,
		PromoteAdmin: userHandler.PromoteAdmin,

		AddDoctor:    doctorHandler.AddDoctor,
		ListDoctors:  doctorHandler.ListDoctors,
		DeleteDoctor: doctorHandler.DeleteDoctor,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
