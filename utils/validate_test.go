package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"rohan@example.com", true},
		{"a.b+c@sub.domain.in", true},
		{"  spaced@example.com  ", true},
		{"", false},
		{"missing-at.example.com", false},
		{"no-domain@", false},
		{"@no-local.com", false},
		{"spaces in@example.com", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"2", true},
		{"9876543210", true},
		{"", false},
		{"3a", false},
		{"-1", false},
		{"2.5", false},
	}

	for _, tt := range tests {
		if got := IsNumeric(tt.value); got != tt.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
