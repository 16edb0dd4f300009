package handlers

import (
	"net/http"

	"dentax/models"
	"dentax/services/payment"
	"dentax/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves the payment endpoints.
type PaymentHandler struct {
	Svc payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

// CreatePaymentIntent returns a Stripe client secret for the booking's price.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var input struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	clientSecret, err := h.Svc.CreateIntent(input.Price)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create payment intent", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// RecordPayment persists the payment and marks the referenced booking paid.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.Svc.Confirm(&p)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to record payment", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"acknowledged": true,
		"insertedId":   id,
	})
}
