package userRepo

import "dentax/models"

// UserRepository abstracts the Users collection.
type UserRepository interface {
	// Create stores a new user and returns the inserted id as a hex string.
	Create(user *models.User) (string, error)
	// GetAll returns every user.
	GetAll() ([]models.User, error)
	// GetByEmail returns the user with the given email, or nil if none exists.
	GetByEmail(email string) (*models.User, error)
	// PromoteToAdmin upserts role "admin" onto the user with the given hex id.
	PromoteToAdmin(id string) error
}
