package appointmentRepo

import "dentax/models"

// OptionRepository abstracts the AppointmentOptions collection.
type OptionRepository interface {
	// GetAll returns every appointment option.
	GetAll() ([]models.AppointmentOption, error)
	// GetNames returns the name-only projection of every option.
	GetNames() ([]models.SpecialtyRef, error)
}
