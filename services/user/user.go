package user

import (
	"fmt"
	"strings"

	"courtside/models"
	"courtside/utils"

	"go.uber.org/zap"
)

// Display name shown when a profile cannot be resolved.
const unknownUserName = "Okänd användare"

// GetProfile fetches a member profile by provider UID.
func (s *DefaultUserService) GetProfile(uid string) (*models.UserProfile, error) {
	profile, err := s.Repo.GetByUID(uid)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// CreateProfileFromAuth creates a profile on first sign-in from the
// identity provider's token claims. If a profile already exists it is
// returned unchanged.
func (s *DefaultUserService) CreateProfileFromAuth(uid, email, displayName string) (*models.UserProfile, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByUID(uid)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}

	// Fallback chain: provided name, then the email prefix, then "User".
	finalName := strings.TrimSpace(displayName)
	if finalName == "" {
		finalName = strings.SplitN(email, "@", 2)[0]
	}
	if strings.TrimSpace(finalName) == "" {
		finalName = "User"
	}

	profile := models.UserProfile{
		UID:         uid,
		DisplayName: finalName,
		Email:       email,
		AvatarURL:   GravatarURL(email),
		Role:        models.RoleUser,
		CreatedAt:   s.now(),
	}

	if err := s.Repo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	logger.Info("user profile created", zap.String("uid", uid), zap.String("displayName", finalName))
	return &profile, nil
}

// UpdateProfile applies a partial profile update. A nil field is left
// unchanged; an explicit empty phone clears the stored number.
func (s *DefaultUserService) UpdateProfile(uid string, update models.UserProfileUpdate) (*models.UserProfile, error) {
	setFields := map[string]any{}
	var unsetFields []string

	if update.DisplayName != nil {
		name := strings.TrimSpace(*update.DisplayName)
		if name == "" {
			return nil, fmt.Errorf("display name cannot be empty")
		}
		setFields["displayName"] = name
	}

	if update.Phone != nil {
		if strings.TrimSpace(*update.Phone) == "" {
			// Empty string is the explicit "remove phone number" sentinel.
			unsetFields = append(unsetFields, "phone")
		} else {
			if !ValidatePhoneNumber(*update.Phone) {
				return nil, fmt.Errorf("ogiltigt telefonnummer, använd formatet +46 70 123 45 67 eller 070-123 45 67")
			}
			setFields["phone"] = FormatPhoneNumber(*update.Phone)
		}
	}

	if update.SidebarState != nil {
		switch *update.SidebarState {
		case models.SidebarExpanded, models.SidebarCollapsed, models.SidebarHover:
			setFields["sidebarState"] = *update.SidebarState
		default:
			return nil, fmt.Errorf("invalid sidebar state %q", *update.SidebarState)
		}
	}

	if update.PreferredBookingLengthMinutes != nil {
		switch *update.PreferredBookingLengthMinutes {
		case 60, 90, 120:
			setFields["preferredBookingLengthMinutes"] = *update.PreferredBookingLengthMinutes
		default:
			return nil, fmt.Errorf("preferred booking length must be 60, 90 or 120 minutes")
		}
	}

	if len(setFields) == 0 && len(unsetFields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	existing, err := s.Repo.GetByUID(uid)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing == nil {
		return nil, ErrProfileNotFound
	}

	if err := s.Repo.UpdateFields(uid, setFields, unsetFields); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.GetProfile(uid)
}

// GetDisplayName resolves a display name for schedule rendering, falling
// back to a placeholder when the profile is missing or unreadable.
func (s *DefaultUserService) GetDisplayName(uid string) string {
	profile, err := s.Repo.GetByUID(uid)
	if err != nil || profile == nil {
		return unknownUserName
	}
	return profile.DisplayName
}

// ListUsers returns every member profile. Admin surface only.
func (s *DefaultUserService) ListUsers() ([]models.UserProfile, error) {
	return s.Repo.GetAll()
}

// UpdateRole changes a member's role. Admin surface only; the handler
// layer enforces who may call this.
func (s *DefaultUserService) UpdateRole(uid string, update models.UserRoleUpdate) error {
	switch update.Role {
	case models.RoleUser, models.RoleAdmin, models.RoleSuperuser:
	default:
		return fmt.Errorf("invalid role %q", update.Role)
	}

	existing, err := s.Repo.GetByUID(uid)
	if err != nil {
		return fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing == nil {
		return ErrProfileNotFound
	}

	if err := s.Repo.UpdateFields(uid, map[string]any{"role": update.Role}, nil); err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	utils.GetLogger().Info("user role updated", zap.String("uid", uid), zap.String("role", update.Role))
	return nil
}
