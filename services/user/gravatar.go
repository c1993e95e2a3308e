package user

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const defaultGravatarSize = 80

// GravatarURL derives the avatar URL for an email address: MD5 of the
// trimmed, lowercased email, with the "mystery person" fallback image.
func GravatarURL(email string) string {
	if strings.TrimSpace(email) == "" {
		return fmt.Sprintf("https://www.gravatar.com/avatar/%032d?s=%d&d=mp", 0, defaultGravatarSize)
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=mp", hash, defaultGravatarSize)
}
