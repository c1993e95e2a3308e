package settingsRepo

import "courtside/models"

// SettingsRepository stores the two site-wide singleton documents: the
// announcement banner and the app settings.
type SettingsRepository interface {
	// GetAnnouncement fetches the banner document, or nil if it has never
	// been written.
	GetAnnouncement() (*models.Announcement, error)

	// UpsertAnnouncement merges the given fields into the banner document,
	// creating it when absent. unset lists fields to remove entirely.
	UpsertAnnouncement(set map[string]any, unset []string) error

	// GetAppSettings fetches the settings document, or nil if it has never
	// been written.
	GetAppSettings() (*models.AppSettings, error)

	// UpsertAppSettings merges the given fields into the settings document,
	// creating it when absent. unset lists fields to remove entirely.
	UpsertAppSettings(set map[string]any, unset []string) error
}
