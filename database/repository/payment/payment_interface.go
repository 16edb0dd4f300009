package paymentRepo

import "dentax/models"

// PaymentRepository abstracts the Payments collection.
type PaymentRepository interface {
	// Insert stores a payment record and returns the inserted id as a hex string.
	Insert(payment *models.Payment) (string, error)
}
