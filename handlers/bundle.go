package handlers

import (
	userRepo "dentax/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every route handler plus the user repository the admin
// guard needs, so route registration takes a single value.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// Appointment endpoints.
	GetAppointmentOptions gin.HandlerFunc
	GetSpecialties        gin.HandlerFunc

	// Booking endpoints.
	ListBookings  gin.HandlerFunc
	GetBooking    gin.HandlerFunc
	CreateBooking gin.HandlerFunc

	// Payment endpoints.
	CreatePaymentIntent gin.HandlerFunc
	RecordPayment       gin.HandlerFunc

	// User and token endpoints.
	IssueJWT     gin.HandlerFunc
	ListUsers    gin.HandlerFunc
	CheckAdmin   gin.HandlerFunc
	CreateUser   gin.HandlerFunc
	PromoteAdmin gin.HandlerFunc

	// Doctor endpoints.
	AddDoctor    gin.HandlerFunc
	ListDoctors  gin.HandlerFunc
	DeleteDoctor gin.HandlerFunc
}
