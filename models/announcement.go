package models

// AnnouncementLink is a labelled URL shown under the announcement banner.
type AnnouncementLink struct {
	Label string `bson:"label" json:"label"`
	URL   string `bson:"url" json:"url"`
}

// Announcement is the single site-wide banner document.
type Announcement struct {
	Enabled bool               `bson:"enabled" json:"enabled"`
	Title   string             `bson:"title" json:"title"`
	Body    string             `bson:"body" json:"body"`
	Links   []AnnouncementLink `bson:"links,omitempty" json:"links,omitempty"`
}

// DefaultAnnouncement is returned when the document has never been written.
func DefaultAnnouncement() Announcement {
	return Announcement{Enabled: false, Title: "", Body: "", Links: []AnnouncementLink{}}
}

// AnnouncementUpdate is a partial update; nil fields are left unchanged.
// Links are blank-filtered on write; an update resulting in zero valid
// links removes the field entirely.
type AnnouncementUpdate struct {
	Enabled *bool               `json:"enabled,omitempty"`
	Title   *string             `json:"title,omitempty"`
	Body    *string             `json:"body,omitempty"`
	Links   *[]AnnouncementLink `json:"links,omitempty"`
}
