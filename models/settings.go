package models

// AppSettings is the single site-wide settings document.
type AppSettings struct {
	BookingsEnabled         bool   `bson:"bookingsEnabled" json:"bookingsEnabled"`
	BookingsDisabledMessage string `bson:"bookingsDisabledMessage,omitempty" json:"bookingsDisabledMessage,omitempty"`
}

// DefaultAppSettings is returned when the document has never been written.
func DefaultAppSettings() AppSettings {
	return AppSettings{BookingsEnabled: true}
}

// AppSettingsUpdate is a partial update; nil fields are left unchanged.
// An explicit empty BookingsDisabledMessage clears the stored message.
type AppSettingsUpdate struct {
	BookingsEnabled         *bool   `json:"bookingsEnabled,omitempty"`
	BookingsDisabledMessage *string `json:"bookingsDisabledMessage,omitempty"`
}

// SlotConfig drives the schedule picker: how wide a slot is, how long a
// default booking lasts, and the bookable hours of the day. Static
// configuration, never derived at runtime.
type SlotConfig struct {
	GranularityMinutes     int `mapstructure:"SLOT_GRANULARITY_MINUTES" json:"granularityMinutes"`
	DefaultDurationMinutes int `mapstructure:"SLOT_DEFAULT_DURATION_MINUTES" json:"defaultDurationMinutes"`
	StartHour              int `mapstructure:"SLOT_WINDOW_START_HOUR" json:"startHour"`
	EndHour                int `mapstructure:"SLOT_WINDOW_END_HOUR" json:"endHour"`
}
