package handlers

import (
	"net/http"

	"dentax/models"
	"dentax/services/doctor"
	"dentax/utils"

	"github.com/gin-gonic/gin"
)

// DoctorHandler serves the admin-only doctor endpoints.
type DoctorHandler struct {
	Svc doctor.DoctorService
}

func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Svc: svc}
}

// AddDoctor stores a new doctor record.
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.Svc.Add(&d)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to add doctor", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"acknowledged": true,
		"insertedId":   id,
	})
}

// ListDoctors returns every doctor.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Svc.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load doctors", err.Error())
		return
	}
	// Empty lists serialize as [] rather than null.
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	c.JSON(http.StatusOK, doctors)
}

// DeleteDoctor removes a doctor by id.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id := c.Param("id")

	if err := h.Svc.Remove(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": 1})
}
