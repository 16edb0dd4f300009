package user

import (
	"errors"

	userRepo "dentax/database/repository/user"
	"dentax/models"
	"dentax/utils"
)

// ErrUnknownEmail is returned when a token is requested for an email with no
// matching user.
var ErrUnknownEmail = errors.New("no user exists for this email")

// DefaultUserService implements UserService on the Users collection.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// IssueToken signs an access token for the email if a matching user exists.
// Tokens carry an expiry; see utils.TokenTTL.
func (s *DefaultUserService) IssueToken(email string) (string, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUnknownEmail
	}
	return utils.GenerateToken(email)
}

// IsAdmin reports whether the user with the given email carries the admin role.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}

// Create stores a new user and returns the inserted id as a hex string.
func (s *DefaultUserService) Create(user *models.User) (string, error) {
	return s.Repo.Create(user)
}

// GetAll returns every user.
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Repo.GetAll()
}

// Promote upserts the admin role onto the user with the given hex id.
func (s *DefaultUserService) Promote(id string) error {
	return s.Repo.PromoteToAdmin(id)
}
