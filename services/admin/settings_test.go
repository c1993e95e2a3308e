package admin

import (
	"testing"

	"courtside/models"
)

// fakeSettingsRepo records the upsert documents it receives.
type fakeSettingsRepo struct {
	announcement *models.Announcement
	appSettings  *models.AppSettings

	lastSet   map[string]any
	lastUnset []string
}

func (f *fakeSettingsRepo) GetAnnouncement() (*models.Announcement, error) {
	return f.announcement, nil
}

func (f *fakeSettingsRepo) UpsertAnnouncement(set map[string]any, unset []string) error {
	f.lastSet, f.lastUnset = set, unset
	return nil
}

func (f *fakeSettingsRepo) GetAppSettings() (*models.AppSettings, error) {
	return f.appSettings, nil
}

func (f *fakeSettingsRepo) UpsertAppSettings(set map[string]any, unset []string) error {
	f.lastSet, f.lastUnset = set, unset
	return nil
}

func TestGetAnnouncementDefault(t *testing.T) {
	svc := &DefaultAdminService{Repo: &fakeSettingsRepo{}}

	a, err := svc.GetAnnouncement()
	if err != nil {
		t.Fatalf("GetAnnouncement: %v", err)
	}
	if a.Enabled {
		t.Error("missing document must default to a disabled banner")
	}
	if a.Title != "" || a.Body != "" {
		t.Error("missing document must default to empty content")
	}
}

func TestUpdateAnnouncementTrimsAndFiltersLinks(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := &DefaultAdminService{Repo: repo}

	enabled := true
	title := "  Klubbmästerskap  "
	links := []models.AnnouncementLink{
		{Label: " Anmälan ", URL: " https://example.com/anmalan "},
		{Label: "", URL: "https://example.com/tom"},
		{Label: "Tom länk", URL: "   "},
	}
	err := svc.UpdateAnnouncement(models.AnnouncementUpdate{Enabled: &enabled, Title: &title, Links: &links})
	if err != nil {
		t.Fatalf("UpdateAnnouncement: %v", err)
	}

	if repo.lastSet["title"] != "Klubbmästerskap" {
		t.Errorf("title = %v, want trimmed", repo.lastSet["title"])
	}
	valid, ok := repo.lastSet["links"].([]models.AnnouncementLink)
	if !ok || len(valid) != 1 {
		t.Fatalf("links = %v, want exactly the one valid link", repo.lastSet["links"])
	}
	if valid[0].Label != "Anmälan" || valid[0].URL != "https://example.com/anmalan" {
		t.Errorf("link not trimmed: %+v", valid[0])
	}
}

func TestUpdateAnnouncementUnsetsEmptyLinks(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := &DefaultAdminService{Repo: repo}

	links := []models.AnnouncementLink{{Label: " ", URL: ""}}
	if err := svc.UpdateAnnouncement(models.AnnouncementUpdate{Links: &links}); err != nil {
		t.Fatalf("UpdateAnnouncement: %v", err)
	}

	if len(repo.lastUnset) != 1 || repo.lastUnset[0] != "links" {
		t.Errorf("unset = %v, want [links]", repo.lastUnset)
	}
}

func TestUpdateAnnouncementEmptyPatch(t *testing.T) {
	svc := &DefaultAdminService{Repo: &fakeSettingsRepo{}}

	if err := svc.UpdateAnnouncement(models.AnnouncementUpdate{}); err == nil {
		t.Fatal("expected error for empty patch")
	}
}

func TestGetAppSettingsDefault(t *testing.T) {
	svc := &DefaultAdminService{Repo: &fakeSettingsRepo{}}

	s, err := svc.GetAppSettings()
	if err != nil {
		t.Fatalf("GetAppSettings: %v", err)
	}
	if !s.BookingsEnabled {
		t.Error("missing document must default to bookings enabled")
	}
}

func TestUpdateAppSettingsClearsMessage(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := &DefaultAdminService{Repo: repo}

	disabled := false
	empty := ""
	err := svc.UpdateAppSettings(models.AppSettingsUpdate{
		BookingsEnabled:         &disabled,
		BookingsDisabledMessage: &empty,
	})
	if err != nil {
		t.Fatalf("UpdateAppSettings: %v", err)
	}

	if repo.lastSet["bookingsEnabled"] != false {
		t.Errorf("bookingsEnabled = %v", repo.lastSet["bookingsEnabled"])
	}
	if len(repo.lastUnset) != 1 || repo.lastUnset[0] != "bookingsDisabledMessage" {
		t.Errorf("unset = %v, want [bookingsDisabledMessage]", repo.lastUnset)
	}
}
