package handlers

import (
	"errors"
	"net/http"

	"dentax/middleware"
	"dentax/models"
	"dentax/services/booking"
	"dentax/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// ListBookings returns the authenticated user's bookings. The email query
// parameter must match the token claim.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	decodedEmail := c.GetString(middleware.ContextEmailKey)

	if email == "" || email != decodedEmail {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	bookings, err := h.Svc.BookingsByEmail(email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings", err.Error())
		return
	}
	// Empty lists serialize as [] rather than null.
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking fetches one booking by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")

	b, err := h.Svc.BookingByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id", err.Error())
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateBooking inserts a conflict-checked booking. A duplicate
// (email, treatment, date) triple keeps the original acknowledged:false body,
// served as a 409.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.Svc.Create(&b)
	if err != nil {
		var conflict *booking.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, gin.H{
				"acknowledged": false,
				"message":      conflict.Error(),
			})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"acknowledged": true,
		"insertedId":   id,
	})
}
