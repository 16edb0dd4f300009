package doctorRepo

import "dentax/models"

// DoctorRepository abstracts the Doctors collection.
type DoctorRepository interface {
	// Insert stores a new doctor and returns the inserted id as a hex string.
	Insert(doctor *models.Doctor) (string, error)
	// GetAll returns every doctor.
	GetAll() ([]models.Doctor, error)
	// Delete removes a doctor by its hex id.
	Delete(id string) error
}
