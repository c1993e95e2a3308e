package admin

import (
	settingsRepo "courtside/database/repository/settings"
	"courtside/models"

	"github.com/go-redis/redis/v8"
)

// AdminService manages the site-wide announcement banner and app settings.
type AdminService interface {
	GetAnnouncement() (models.Announcement, error)
	UpdateAnnouncement(update models.AnnouncementUpdate) error
	GetAppSettings() (models.AppSettings, error)
	UpdateAppSettings(update models.AppSettingsUpdate) error
}

// DefaultAdminService implements AdminService. Reads go through a small
// Redis cache since every page load fetches both documents; admin writes
// invalidate the cached copy.
type DefaultAdminService struct {
	Repo  settingsRepo.SettingsRepository
	Cache *redis.Client
}
