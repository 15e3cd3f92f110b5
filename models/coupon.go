package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Coupon is a named discount rule: a percentage capped at a maximum amount.
type Coupon struct {
	gorm.Model
	Code            string    `json:"code" gorm:"unique"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discount_percent"`
	MaxDiscount     int       `json:"max_discount"`
	ValidUntil      time.Time `json:"valid_until"`
}

// Expired reports whether the coupon's validity window has passed.
func (c *Coupon) Expired() bool {
	return !c.ValidUntil.IsZero() && time.Now().After(c.ValidUntil)
}

// FindCoupon matches a user-entered code against the coupon table.
// Matching is case-insensitive exact equality.
func FindCoupon(tx *gorm.DB, code string) (*Coupon, error) {
	var coupon Coupon
	err := tx.Where("UPPER(code) = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&coupon).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}
