package user

import "testing"

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"international with spaces", "+46 70 123 45 67", "+46701234567"},
		{"national with dash", "070-123 45 67", "+46701234567"},
		{"national compact", "0701234567", "+46701234567"},
		{"country code without plus", "46701234567", "+46701234567"},
		{"bare swedish mobile", "701234567", "+46701234567"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"other international", "+4512345678", "+4512345678"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatPhoneNumber(tc.input); got != tc.want {
				t.Errorf("FormatPhoneNumber(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty is valid", "", true},
		{"whitespace is valid", "  ", true},
		{"swedish mobile", "070-123 45 67", true},
		{"international", "+46 70 123 45 67", true},
		{"too short", "07", false},
		{"other country", "+4512345678", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidatePhoneNumber(tc.input); got != tc.want {
				t.Errorf("ValidatePhoneNumber(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
