package booking

import "dentax/models"

// BookingService exposes the appointment and booking operations.
type BookingService interface {
	// AvailableOptions returns every appointment option with its slots reduced
	// to the ones still open on the given date.
	AvailableOptions(date string) ([]models.AppointmentOption, error)
	// Specialties returns the name-only projection of the options.
	Specialties() ([]models.SpecialtyRef, error)
	// Create inserts a booking after the conflict check. A duplicate
	// (email, treatment, appointmentDate) triple returns a *ConflictError.
	Create(booking *models.Booking) (string, error)
	// BookingsByEmail returns all bookings made by the given email.
	BookingsByEmail(email string) ([]models.Booking, error)
	// BookingByID returns one booking, or nil if no such booking exists.
	BookingByID(id string) (*models.Booking, error)
}
