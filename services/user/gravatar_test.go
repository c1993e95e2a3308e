package user

import (
	"strings"
	"testing"
)

func TestGravatarURL(t *testing.T) {
	// MD5 of "test@example.com".
	got := GravatarURL("test@example.com")
	want := "https://www.gravatar.com/avatar/55502f40dc8b7c769880b10874abc9d0?s=80&d=mp"
	if got != want {
		t.Errorf("GravatarURL = %q, want %q", got, want)
	}
}

func TestGravatarURLNormalizesEmail(t *testing.T) {
	if GravatarURL("  Test@Example.COM ") != GravatarURL("test@example.com") {
		t.Error("email must be trimmed and lowercased before hashing")
	}
}

func TestGravatarURLEmptyEmail(t *testing.T) {
	got := GravatarURL("")
	if !strings.Contains(got, "00000000000000000000000000000000") {
		t.Errorf("empty email should use the zero-hash fallback, got %q", got)
	}
}
