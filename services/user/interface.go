package user

import "dentax/models"

// UserService handles token issuance and user administration.
type UserService interface {
	// IssueToken signs an access token for the email if a matching user
	// exists; an unknown email returns ErrUnknownEmail.
	IssueToken(email string) (string, error)
	// IsAdmin reports whether the user with the given email carries the
	// admin role. Unknown emails are simply not admins.
	IsAdmin(email string) (bool, error)
	// Create stores a new user and returns the inserted id as a hex string.
	Create(user *models.User) (string, error)
	// GetAll returns every user.
	GetAll() ([]models.User, error)
	// Promote upserts the admin role onto the user with the given hex id.
	Promote(id string) error
}
