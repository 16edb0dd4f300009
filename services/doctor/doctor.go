package doctor

import (
	doctorRepo "dentax/database/repository/doctor"
	"dentax/models"
)

// DoctorService handles admin-managed doctor records.
type DoctorService interface {
	Add(doctor *models.Doctor) (string, error)
	List() ([]models.Doctor, error)
	Remove(id string) error
}

// DefaultDoctorService implements DoctorService on the Doctors collection.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) Add(doctor *models.Doctor) (string, error) {
	return s.Repo.Insert(doctor)
}

func (s *DefaultDoctorService) List() ([]models.Doctor, error) {
	return s.Repo.GetAll()
}

func (s *DefaultDoctorService) Remove(id string) error {
	return s.Repo.Delete(id)
}
