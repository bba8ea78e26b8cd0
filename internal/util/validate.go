package util

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[\d\s\+\-\(\)]+$`)
)

// ValidEmail reports whether s looks like an email address
func ValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// ValidPhone reports whether s looks like a phone number.
// Allows international format; 10-20 characters.
func ValidPhone(s string) bool {
	phone := strings.TrimSpace(s)
	return phoneRegex.MatchString(phone) && len(phone) >= 10 && len(phone) <= 20
}
