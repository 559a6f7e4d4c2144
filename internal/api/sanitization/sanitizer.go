package sanitization

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// SanitizeString collapses runs of whitespace and trims the ends
func SanitizeString(input string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(input, " "))
}

// SanitizeEmail normalizes an email address for storage and comparison
func SanitizeEmail(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// SanitizeOptional trims an optional field, turning blank values into nil
func SanitizeOptional(input *string) *string {
	if input == nil {
		return nil
	}
	s := strings.TrimSpace(*input)
	if s == "" {
		return nil
	}
	return &s
}
