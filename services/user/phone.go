package user

import (
	"regexp"
	"strings"
)

var (
	whitespaceOrDash = regexp.MustCompile(`[\s-]+`)
	nonDigitOrPlus   = regexp.MustCompile(`[^\d+]`)
	swedishMobile    = regexp.MustCompile(`^[7-9]\d{8}$`)
)

// FormatPhoneNumber normalizes a Swedish phone number to international
// form, e.g. "070-123 45 67" becomes "+46701234567". Returns the empty
// string for blank input.
func FormatPhoneNumber(phone string) string {
	cleaned := whitespaceOrDash.ReplaceAllString(strings.TrimSpace(phone), "")
	if cleaned == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(cleaned, "0"):
		// Replace the national leading zero with the country code.
		cleaned = "+46" + cleaned[1:]
	case strings.HasPrefix(cleaned, "+"):
		// Already international.
	case strings.HasPrefix(cleaned, "46"):
		cleaned = "+" + cleaned
	case swedishMobile.MatchString(cleaned):
		// Nine digits starting with 7-9: assume a Swedish mobile.
		cleaned = "+46" + cleaned
	default:
		cleaned = "+" + cleaned
	}

	return nonDigitOrPlus.ReplaceAllString(cleaned, "")
}

// ValidatePhoneNumber reports whether a phone number is acceptable.
// Empty input is valid (the field is optional).
func ValidatePhoneNumber(phone string) bool {
	if strings.TrimSpace(phone) == "" {
		return true
	}

	formatted := FormatPhoneNumber(phone)
	if formatted == "" {
		return false
	}

	if strings.HasPrefix(formatted, "+46") {
		// Swedish numbers carry 7-12 digits after the country code.
		rest := formatted[3:]
		return len(rest) >= 7 && len(rest) <= 12
	}

	// Other international formats: just a sane overall length.
	return len(formatted) >= 8 && len(formatted) <= 15
}
