package payment

import "dentax/models"

// PaymentService handles the Stripe payment-intent flow and payment confirmation.
type PaymentService interface {
	// CreateIntent requests a card payment intent for the given price in USD
	// and returns the gateway's client secret.
	CreateIntent(price float64) (string, error)
	// Confirm persists the payment record and marks the referenced booking
	// paid. Returns the id of the stored payment record.
	Confirm(payment *models.Payment) (string, error)
}
