package models

import (
	"time"
)

// BookingDraft is the in-flight state of the multi-step booking flow
// (customize -> schedule -> checkout -> payment). Drafts live in Redis with a
// TTL; each step validates its typed record before the draft advances, so a
// missing field fails fast instead of falling back to a default downstream.
type BookingDraft struct {
	ID            string                `json:"id"`
	UserID        uint                  `json:"user_id"`
	ProviderID    uint                  `json:"provider_id"`
	Customization *ServiceCustomization `json:"customization,omitempty"`
	Schedule      *ScheduleDetails      `json:"schedule,omitempty"`
	CouponCode    string                `json:"coupon_code,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}
