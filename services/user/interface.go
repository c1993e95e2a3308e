package user

import (
	"errors"
	"time"

	userRepo "courtside/database/repository/user"
	"courtside/models"
)

// ErrProfileNotFound is returned when no profile document exists for a UID.
var ErrProfileNotFound = errors.New("user profile not found")

// UserService defines club member profile operations. Authentication
// itself is handled by the identity provider; this service only manages
// the profile documents keyed by provider UID.
type UserService interface {
	GetProfile(uid string) (*models.UserProfile, error)
	CreateProfileFromAuth(uid, email, displayName string) (*models.UserProfile, error)
	UpdateProfile(uid string, update models.UserProfileUpdate) (*models.UserProfile, error)
	GetDisplayName(uid string) string
	ListUsers() ([]models.UserProfile, error)
	UpdateRole(uid string, update models.UserRoleUpdate) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository

	// Now is the injectable clock for createdAt stamps. Defaults to
	// time.Now when nil.
	Now func() time.Time
}

func (s *DefaultUserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
