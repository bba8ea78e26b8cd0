package util

import "testing"

func TestValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple", "jane@example.com", true},
		{"subdomain", "jane@mail.example.com", true},
		{"plus tag", "jane+tag@example.com", true},
		{"dots and digits", "j.doe42@example.co", true},
		{"surrounding spaces", "  jane@example.com  ", true},
		{"missing at", "janeexample.com", false},
		{"missing domain", "jane@", false},
		{"missing tld", "jane@example", false},
		{"single letter tld", "jane@example.c", false},
		{"empty", "", false},
		{"spaces inside", "jane doe@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidEmail(tt.email); got != tt.want {
				t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"us format", "+1 (212) 685-2127", true},
		{"digits only", "2126852127", true},
		{"international", "+44 20 7946 0958", true},
		{"too short", "123456789", false},
		{"too long", "123456789012345678901", false},
		{"letters", "212-CALL-NOW", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPhone(tt.phone); got != tt.want {
				t.Errorf("ValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}
