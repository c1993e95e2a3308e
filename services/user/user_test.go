package user

import (
	"errors"
	"testing"
	"time"

	"courtside/models"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	profiles map[string]models.UserProfile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{profiles: make(map[string]models.UserProfile)}
}

func (f *fakeUserRepo) GetByUID(uid string) (*models.UserProfile, error) {
	if p, ok := f.profiles[uid]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll() ([]models.UserProfile, error) {
	var out []models.UserProfile
	for _, p := range f.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeUserRepo) Create(profile models.UserProfile) error {
	f.profiles[profile.UID] = profile
	return nil
}

func (f *fakeUserRepo) UpdateFields(uid string, set map[string]any, unset []string) error {
	p, ok := f.profiles[uid]
	if !ok {
		return errors.New("no such profile")
	}
	for field, value := range set {
		switch field {
		case "displayName":
			p.DisplayName = value.(string)
		case "phone":
			p.Phone = value.(string)
		case "sidebarState":
			p.SidebarState = value.(string)
		case "preferredBookingLengthMinutes":
			p.PreferredBookingLengthMinutes = value.(int)
		case "role":
			p.Role = value.(string)
		}
	}
	for _, field := range unset {
		if field == "phone" {
			p.Phone = ""
		}
	}
	f.profiles[uid] = p
	return nil
}

func newTestUserService(repo *fakeUserRepo) *DefaultUserService {
	return &DefaultUserService{
		Repo: repo,
		Now:  func() time.Time { return time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestCreateProfileFromAuth(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo())

	profile, err := svc.CreateProfileFromAuth("uid-1", "anna@example.com", "Anna")
	if err != nil {
		t.Fatalf("CreateProfileFromAuth: %v", err)
	}
	if profile.DisplayName != "Anna" {
		t.Errorf("displayName = %q", profile.DisplayName)
	}
	if profile.Role != models.RoleUser {
		t.Errorf("new profiles default to role user, got %q", profile.Role)
	}
	if profile.AvatarURL == "" {
		t.Error("avatar URL must be derived from the email")
	}
	if profile.CreatedAt.IsZero() {
		t.Error("createdAt must be stamped")
	}
}

func TestCreateProfileFromAuthNameFallback(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo())

	profile, err := svc.CreateProfileFromAuth("uid-1", "bjorn@example.com", "  ")
	if err != nil {
		t.Fatalf("CreateProfileFromAuth: %v", err)
	}
	if profile.DisplayName != "bjorn" {
		t.Errorf("displayName = %q, want email prefix fallback", profile.DisplayName)
	}
}

func TestCreateProfileFromAuthIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo)

	first, err := svc.CreateProfileFromAuth("uid-1", "anna@example.com", "Anna")
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.CreateProfileFromAuth("uid-1", "anna@example.com", "Someone Else")
	if err != nil {
		t.Fatal(err)
	}
	if second.DisplayName != first.DisplayName {
		t.Error("repeat sign-in must return the existing profile unchanged")
	}
}

func TestCreateProfileFromAuthEmptyEmail(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo())

	if _, err := svc.CreateProfileFromAuth("uid-1", "  ", "Anna"); err == nil {
		t.Fatal("expected error for empty email")
	}
}

func TestUpdateProfilePhone(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo)
	if _, err := svc.CreateProfileFromAuth("uid-1", "anna@example.com", "Anna"); err != nil {
		t.Fatal(err)
	}

	phone := "070-123 45 67"
	updated, err := svc.UpdateProfile("uid-1", models.UserProfileUpdate{Phone: &phone})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Phone != "+46701234567" {
		t.Errorf("phone = %q, want normalized international form", updated.Phone)
	}

	// An explicit empty string clears the number.
	empty := ""
	updated, err = svc.UpdateProfile("uid-1", models.UserProfileUpdate{Phone: &empty})
	if err != nil {
		t.Fatalf("UpdateProfile clear: %v", err)
	}
	if updated.Phone != "" {
		t.Errorf("phone = %q, want cleared", updated.Phone)
	}
}

func TestUpdateProfileInvalidPhone(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo)
	if _, err := svc.CreateProfileFromAuth("uid-1", "anna@example.com", "Anna"); err != nil {
		t.Fatal(err)
	}

	bad := "07"
	if _, err := svc.UpdateProfile("uid-1", models.UserProfileUpdate{Phone: &bad}); err == nil {
		t.Fatal("expected error for invalid phone number")
	}
}

func TestUpdateProfileNoFields(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo())

	if _, err := svc.UpdateProfile("uid-1", models.UserProfileUpdate{}); err == nil {
		t.Fatal("expected error for empty patch")
	}
}

func TestUpdateProfileMissing(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo())

	name := "Anna"
	if _, err := svc.UpdateProfile("missing", models.UserProfileUpdate{DisplayName: &name}); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestGetDisplayNameFallback(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo())

	if got := svc.GetDisplayName("missing"); got != "Okänd användare" {
		t.Errorf("GetDisplayName = %q", got)
	}
}

func TestUpdateRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo)
	if _, err := svc.CreateProfileFromAuth("uid-1", "anna@example.com", "Anna"); err != nil {
		t.Fatal(err)
	}

	if err := svc.UpdateRole("uid-1", models.UserRoleUpdate{Role: models.RoleAdmin}); err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	profile, err := svc.GetProfile("uid-1")
	if err != nil {
		t.Fatal(err)
	}
	if !profile.IsAdmin() {
		t.Error("profile should be admin after role update")
	}

	if err := svc.UpdateRole("uid-1", models.UserRoleUpdate{Role: "owner"}); err == nil {
		t.Error("expected error for invalid role")
	}
	if err := svc.UpdateRole("missing", models.UserRoleUpdate{Role: models.RoleAdmin}); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestEffectiveRoleDefaultsToUser(t *testing.T) {
	legacy := models.UserProfile{UID: "uid-1", DisplayName: "Old Timer"}
	if legacy.EffectiveRole() != models.RoleUser {
		t.Errorf("EffectiveRole = %q, want user", legacy.EffectiveRole())
	}
	if legacy.IsAdmin() {
		t.Error("legacy profile without a role must not be admin")
	}
}
