package userRepo

import "courtside/models"

// UserRepository defines data access for club member profiles, keyed by
// the Firebase Auth UID.
type UserRepository interface {
	// GetByUID fetches a profile, or nil if no such document exists.
	GetByUID(uid string) (*models.UserProfile, error)

	// GetAll returns every profile. Admin surface only.
	GetAll() ([]models.UserProfile, error)

	// Create inserts a new profile document.
	Create(profile models.UserProfile) error

	// UpdateFields applies a raw partial update; the caller decides which
	// fields change and which are cleared.
	UpdateFields(uid string, set map[string]any, unset []string) error
}
