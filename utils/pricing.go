package utils

import (
	"math"

	"github.com/kunalsaini/home-service-app/models"
)

// Base price for a service before frequency and time-slot adjustments
const BasePrice = 800

// PlatformFeeRate is the fixed 5% surcharge on the service subtotal
const PlatformFeeRate = 0.05

// EstimatePrice computes the estimated service price from the schedule
// selections. The result depends only on the inputs.
func EstimatePrice(frequency models.ServiceFrequency, slot models.TimeSlot) int {
	multiplier := 1.0
	switch frequency {
	case models.FrequencyDaily:
		multiplier = 0.9
	case models.FrequencyTwiceAWeek:
		multiplier = 0.95
	case models.FrequencyWeekly:
		multiplier = 1.0
	case models.FrequencyBiWeekly:
		multiplier = 1.05
	}

	adjustment := 0
	switch slot {
	case models.SlotMorning:
		adjustment = 100
	case models.SlotEvening:
		adjustment = 150
	}

	return int(math.Round(BasePrice*multiplier)) + adjustment
}

// PlatformFee returns the platform surcharge for a subtotal.
func PlatformFee(subtotal int) int {
	return int(math.Round(float64(subtotal) * PlatformFeeRate))
}

// Discount computes the coupon discount for a subtotal: the percentage of
// the subtotal, capped at the coupon's maximum. A nil coupon discounts
// nothing.
func Discount(subtotal int, coupon *models.Coupon) int {
	if coupon == nil {
		return 0
	}

	amount := int(math.Round(float64(subtotal) * float64(coupon.DiscountPercent) / 100))
	if amount > coupon.MaxDiscount {
		return coupon.MaxDiscount
	}
	return amount
}

// Total combines the line items into the amount payable.
func Total(subtotal, fee, discount int) int {
	return subtotal + fee - discount
}

// PriceBreakdown is the full derived price of a draft. All four numbers are
// recomputed together from the current selections so the displayed total can
// never drift from the displayed line items.
type PriceBreakdown struct {
	Subtotal    int `json:"subtotal"`
	PlatformFee int `json:"platform_fee"`
	Discount    int `json:"discount"`
	Total       int `json:"total"`
}

// ComputeBreakdown derives every price component from a subtotal and an
// optionally applied coupon.
func ComputeBreakdown(subtotal int, coupon *models.Coupon) PriceBreakdown {
	fee := PlatformFee(subtotal)
	discount := Discount(subtotal, coupon)
	return PriceBreakdown{
		Subtotal:    subtotal,
		PlatformFee: fee,
		Discount:    discount,
		Total:       Total(subtotal, fee, discount),
	}
}
