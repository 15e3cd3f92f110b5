package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail checks the email format used across profile and auth forms.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

var numericRegex = regexp.MustCompile(`^[0-9]+$`)

// IsNumeric checks custom count inputs (adults, kids) for digits only.
func IsNumeric(value string) bool {
	return numericRegex.MatchString(value)
}
