package models

import (
	"testing"
	"time"
)

func TestCouponExpired(t *testing.T) {
	tests := []struct {
		name       string
		validUntil time.Time
		want       bool
	}{
		{"future validity", time.Now().Add(24 * time.Hour), false},
		{"already expired", time.Now().Add(-24 * time.Hour), true},
		{"no validity window", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coupon := Coupon{Code: "NEW50", ValidUntil: tt.validUntil}
			if got := coupon.Expired(); got != tt.want {
				t.Errorf("Expired() with valid_until %v = %v, want %v", tt.validUntil, got, tt.want)
			}
		})
	}
}
