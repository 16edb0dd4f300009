package handlers

import (
	"net/http"

	"dentax/models"
	"dentax/services/booking"
	"dentax/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves the public appointment-option endpoints.
type AppointmentHandler struct {
	Svc booking.BookingService
}

func NewAppointmentHandler(svc booking.BookingService) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc}
}

// GetAppointmentOptions lists every option with the slots still open on the
// requested date.
func (h *AppointmentHandler) GetAppointmentOptions(c *gin.Context) {
	date := c.Query("date")

	options, err := h.Svc.AvailableOptions(date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load appointment options", err.Error())
		return
	}
	// Empty lists serialize as [] rather than null.
	if options == nil {
		options = []models.AppointmentOption{}
	}
	c.JSON(http.StatusOK, options)
}

// GetSpecialties lists treatment names only.
func (h *AppointmentHandler) GetSpecialties(c *gin.Context) {
	specialties, err := h.Svc.Specialties()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load specialties", err.Error())
		return
	}
	if specialties == nil {
		specialties = []models.SpecialtyRef{}
	}
	c.JSON(http.StatusOK, specialties)
}
