package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"courtside/models"
	"courtside/utils"

	"go.uber.org/zap"
)

const (
	announcementCacheKey = "settings:announcement"
	appSettingsCacheKey  = "settings:app"
	settingsCacheTTL     = 5 * time.Minute
)

// GetAnnouncement returns the banner document, falling back to the
// disabled default when it has never been written.
func (s *DefaultAdminService) GetAnnouncement() (models.Announcement, error) {
	var cached models.Announcement
	if s.cacheGet(announcementCacheKey, &cached) {
		return cached, nil
	}

	doc, err := s.Repo.GetAnnouncement()
	if err != nil {
		return models.Announcement{}, fmt.Errorf("failed to load announcement: %w", err)
	}
	if doc == nil {
		def := models.DefaultAnnouncement()
		return def, nil
	}

	s.cacheSet(announcementCacheKey, doc)
	return *doc, nil
}

// UpdateAnnouncement merges a partial banner update. Links are
// blank-filtered; an update resulting in zero valid links removes the
// field entirely.
func (s *DefaultAdminService) UpdateAnnouncement(update models.AnnouncementUpdate) error {
	setFields := map[string]any{}
	var unsetFields []string

	if update.Enabled != nil {
		setFields["enabled"] = *update.Enabled
	}
	if update.Title != nil {
		setFields["title"] = strings.TrimSpace(*update.Title)
	}
	if update.Body != nil {
		setFields["body"] = strings.TrimSpace(*update.Body)
	}
	if update.Links != nil {
		valid := filterLinks(*update.Links)
		if len(valid) == 0 {
			unsetFields = append(unsetFields, "links")
		} else {
			setFields["links"] = valid
		}
	}

	if len(setFields) == 0 && len(unsetFields) == 0 {
		return fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpsertAnnouncement(setFields, unsetFields); err != nil {
		return fmt.Errorf("failed to update announcement: %w", err)
	}

	s.cacheInvalidate(announcementCacheKey)
	utils.GetLogger().Info("announcement updated", zap.Any("fields", setFields))
	return nil
}

// GetAppSettings returns the settings document, falling back to
// bookings-enabled defaults when it has never been written.
func (s *DefaultAdminService) GetAppSettings() (models.AppSettings, error) {
	var cached models.AppSettings
	if s.cacheGet(appSettingsCacheKey, &cached) {
		return cached, nil
	}

	doc, err := s.Repo.GetAppSettings()
	if err != nil {
		return models.AppSettings{}, fmt.Errorf("failed to load app settings: %w", err)
	}
	if doc == nil {
		return models.DefaultAppSettings(), nil
	}

	s.cacheSet(appSettingsCacheKey, doc)
	return *doc, nil
}

// UpdateAppSettings merges a partial settings update. An explicit empty
// disabled-message clears the stored text.
func (s *DefaultAdminService) UpdateAppSettings(update models.AppSettingsUpdate) error {
	setFields := map[string]any{}
	var unsetFields []string

	if update.BookingsEnabled != nil {
		setFields["bookingsEnabled"] = *update.BookingsEnabled
	}
	if update.BookingsDisabledMessage != nil {
		msg := strings.TrimSpace(*update.BookingsDisabledMessage)
		if msg == "" {
			unsetFields = append(unsetFields, "bookingsDisabledMessage")
		} else {
			setFields["bookingsDisabledMessage"] = msg
		}
	}

	if len(setFields) == 0 && len(unsetFields) == 0 {
		return fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpsertAppSettings(setFields, unsetFields); err != nil {
		return fmt.Errorf("failed to update app settings: %w", err)
	}

	s.cacheInvalidate(appSettingsCacheKey)
	utils.GetLogger().Info("app settings updated", zap.Any("fields", setFields))
	return nil
}

// filterLinks drops links with a blank label or URL and trims the rest.
func filterLinks(links []models.AnnouncementLink) []models.AnnouncementLink {
	var valid []models.AnnouncementLink
	for _, link := range links {
		label := strings.TrimSpace(link.Label)
		url := strings.TrimSpace(link.URL)
		if label == "" || url == "" {
			continue
		}
		valid = append(valid, models.AnnouncementLink{Label: label, URL: url})
	}
	return valid
}

func (s *DefaultAdminService) cacheGet(key string, dest any) bool {
	if s.Cache == nil {
		return false
	}
	data, err := s.Cache.Get(context.Background(), key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), dest) == nil
}

func (s *DefaultAdminService) cacheSet(key string, value any) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Cache.Set(context.Background(), key, data, settingsCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache settings document", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultAdminService) cacheInvalidate(key string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), key).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate settings cache", zap.String("key", key), zap.Error(err))
	}
}
