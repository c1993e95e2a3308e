package models

import "time"

// User roles, least to most privileged.
const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleSuperuser = "superuser"
)

// Sidebar display preferences.
const (
	SidebarExpanded  = "expanded"
	SidebarCollapsed = "collapsed"
	SidebarHover     = "hover"
)

// UserProfile is the club member profile keyed by the Firebase Auth UID.
// Identity itself (passwords, sessions) lives with the provider; this is
// only the club-facing document.
type UserProfile struct {
	UID                string    `bson:"uid" json:"uid"`
	DisplayName        string    `bson:"displayName" json:"displayName"`
	Email              string    `bson:"email" json:"email"`
	Phone              string    `bson:"phone,omitempty" json:"phone,omitempty"`
	AvatarURL          string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Role               string    `bson:"role,omitempty" json:"role,omitempty"` // defaults to "user" when absent
	SidebarState       string    `bson:"sidebarState,omitempty" json:"sidebarState,omitempty"`
	PreferredBookingLengthMinutes int `bson:"preferredBookingLengthMinutes,omitempty" json:"preferredBookingLengthMinutes,omitempty"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
}

// EffectiveRole resolves the stored role, defaulting legacy profiles
// without one to plain "user".
func (u UserProfile) EffectiveRole() string {
	if u.Role == "" {
		return RoleUser
	}
	return u.Role
}

// IsAdmin reports whether the profile carries admin privileges.
func (u UserProfile) IsAdmin() bool {
	role := u.EffectiveRole()
	return role == RoleAdmin || role == RoleSuperuser
}

// UserProfileUpdate is a partial profile update. A nil field means
// "unchanged"; an explicit empty Phone clears the stored number.
type UserProfileUpdate struct {
	DisplayName                   *string `json:"displayName,omitempty"`
	Phone                         *string `json:"phone,omitempty"`
	SidebarState                  *string `json:"sidebarState,omitempty"`
	PreferredBookingLengthMinutes *int    `json:"preferredBookingLengthMinutes,omitempty"`
}

// UserRoleUpdate is the admin-only role change payload.
type UserRoleUpdate struct {
	Role string `json:"role"`
}
