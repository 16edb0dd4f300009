package bookingRepo

import "dentax/models"

// BookingRepository abstracts the Bookings collection.
type BookingRepository interface {
	// Insert stores a new booking and returns the inserted id as a hex string.
	// A duplicate (email, treatment, appointmentDate) triple fails with
	// ErrDuplicateBooking.
	Insert(booking *models.Booking) (string, error)
	// Exists reports whether a booking with the given triple is already stored.
	Exists(email, treatment, date string) (bool, error)
	// GetByDate returns all bookings for the given appointment date.
	GetByDate(date string) ([]models.Booking, error)
	// GetByEmail returns all bookings made by the given email.
	GetByEmail(email string) ([]models.Booking, error)
	// GetByID returns one booking by its hex id, or nil if no such booking exists.
	GetByID(id string) (*models.Booking, error)
	// MarkPaid flags the booking as paid and records the transaction id.
	MarkPaid(id, transactionID string) error
}
