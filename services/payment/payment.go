package payment

import (
	"fmt"
	"math"

	bookingRepo "dentax/database/repository/booking"
	paymentRepo "dentax/database/repository/payment"
	"dentax/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// DefaultPaymentService implements PaymentService against Stripe and the
// Payments/Bookings collections.
type DefaultPaymentService struct {
	PaymentRepo paymentRepo.PaymentRepository
	BookingRepo bookingRepo.BookingRepository
	Logger      *zap.Logger
}

// AmountInCents converts a price in whole currency units to the smallest
// currency unit Stripe expects (2-decimal currency assumed).
func AmountInCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent requests a card payment intent for the given price in USD and
// returns the gateway's client secret. Nothing is persisted at this step; the
// front end completes the charge and posts the result to Confirm.
func (s *DefaultPaymentService) CreateIntent(price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(AmountInCents(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.SetIdempotencyKey(uuid.New().String())

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

// Confirm persists the payment record and marks the referenced booking paid.
// If the booking update fails after the record is stored, the partial state is
// reported instead of silently acked: the caller gets an error and the orphaned
// payment id is logged for reconciliation.
func (s *DefaultPaymentService) Confirm(payment *models.Payment) (string, error) {
	id, err := s.PaymentRepo.Insert(payment)
	if err != nil {
		return "", err
	}

	if err := s.BookingRepo.MarkPaid(payment.BookingID, payment.TransactionID); err != nil {
		s.Logger.Error("payment recorded but booking update failed",
			zap.String("paymentId", id),
			zap.String("bookingId", payment.BookingID),
			zap.Error(err),
		)
		return "", fmt.Errorf("payment %s recorded but booking %s not updated: %w", id, payment.BookingID, err)
	}
	return id, nil
}
