package utils

import (
	"testing"
	"time"

	"github.com/kunalsaini/home-service-app/models"
)

func TestEstimatePrice(t *testing.T) {
	tests := []struct {
		name      string
		frequency models.ServiceFrequency
		slot      models.TimeSlot
		want      int
	}{
		{
			name:      "Daily Morning (800*0.9+100)",
			frequency: models.FrequencyDaily,
			slot:      models.SlotMorning,
			want:      820,
		},
		{
			name:      "Daily Evening (800*0.9+150)",
			frequency: models.FrequencyDaily,
			slot:      models.SlotEvening,
			want:      870,
		},
		{
			name:      "Twice a week Afternoon (800*0.95+0)",
			frequency: models.FrequencyTwiceAWeek,
			slot:      models.SlotAfternoon,
			want:      760,
		},
		{
			name:      "Weekly Evening (800*1.0+150)",
			frequency: models.FrequencyWeekly,
			slot:      models.SlotEvening,
			want:      950,
		},
		{
			name:      "Bi-Weekly Morning (800*1.05+100)",
			frequency: models.FrequencyBiWeekly,
			slot:      models.SlotMorning,
			want:      940,
		},
		{
			name:      "One-Time takes the default multiplier",
			frequency: models.FrequencyOneTime,
			slot:      models.SlotAfternoon,
			want:      800,
		},
		{
			name:      "Custom frequency and slot take the defaults",
			frequency: models.FrequencyCustom,
			slot:      models.SlotCustom,
			want:      800,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimatePrice(tt.frequency, tt.slot)
			if got != tt.want {
				t.Errorf("EstimatePrice(%q, %q) = %d, want %d", tt.frequency, tt.slot, got, tt.want)
			}
			// Deterministic: a second call must agree
			if again := EstimatePrice(tt.frequency, tt.slot); again != got {
				t.Errorf("EstimatePrice not deterministic: %d then %d", got, again)
			}
		})
	}
}

func TestPlatformFee(t *testing.T) {
	tests := []struct {
		subtotal int
		want     int
	}{
		{0, 0},
		{800, 40},
		{940, 47},
		{950, 48}, // 47.5 rounds half up
		{1200, 60},
	}

	for _, tt := range tests {
		if got := PlatformFee(tt.subtotal); got != tt.want {
			t.Errorf("PlatformFee(%d) = %d, want %d", tt.subtotal, got, tt.want)
		}
	}
}

func coupon(code string, percent, maxDiscount int) *models.Coupon {
	return &models.Coupon{
		Code:            code,
		DiscountPercent: percent,
		MaxDiscount:     maxDiscount,
		ValidUntil:      time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestDiscount(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int
		coupon   *models.Coupon
		want     int
	}{
		{
			name:     "no coupon applied",
			subtotal: 940,
			coupon:   nil,
			want:     0,
		},
		{
			name:     "WEEKEND20 under the cap (940*0.20=188)",
			subtotal: 940,
			coupon:   coupon("WEEKEND20", 20, 250),
			want:     188,
		},
		{
			name:     "NEW50 hits the cap (round(5000) capped to 200)",
			subtotal: 10000,
			coupon:   coupon("NEW50", 50, 200),
			want:     200,
		},
		{
			name:     "FLASH25 at the cap boundary (1200*0.25=300)",
			subtotal: 1200,
			coupon:   coupon("FLASH25", 25, 300),
			want:     300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Discount(tt.subtotal, tt.coupon)
			if got != tt.want {
				t.Errorf("Discount(%d, %v) = %d, want %d", tt.subtotal, tt.coupon, got, tt.want)
			}
			if tt.coupon != nil && got > tt.coupon.MaxDiscount {
				t.Errorf("Discount exceeds cap: %d > %d", got, tt.coupon.MaxDiscount)
			}
			// Idempotent in effect: reapplying yields the same discount
			if again := Discount(tt.subtotal, tt.coupon); again != got {
				t.Errorf("Discount not idempotent: %d then %d", got, again)
			}
		})
	}
}

func TestComputeBreakdownNoDrift(t *testing.T) {
	// Re-deriving the total from the displayed components must always match
	subtotals := []int{0, 500, 760, 800, 940, 1200, 10000}
	coupons := []*models.Coupon{
		nil,
		coupon("NEW50", 50, 200),
		coupon("FLASH25", 25, 300),
		coupon("WEEKEND20", 20, 250),
	}

	for _, subtotal := range subtotals {
		for _, cp := range coupons {
			breakdown := ComputeBreakdown(subtotal, cp)
			rederived := breakdown.Subtotal + breakdown.PlatformFee - breakdown.Discount
			if breakdown.Total != rederived {
				t.Errorf("breakdown drifted for subtotal=%d coupon=%v: total=%d, rederived=%d",
					subtotal, cp, breakdown.Total, rederived)
			}
		}
	}
}

func TestBookingPipelineEndToEnd(t *testing.T) {
	// Bi-Weekly Morning: round(800*1.05+100) = 940
	subtotal := EstimatePrice(models.FrequencyBiWeekly, models.SlotMorning)
	if subtotal != 940 {
		t.Fatalf("estimated price = %d, want 940", subtotal)
	}

	breakdown := ComputeBreakdown(subtotal, coupon("WEEKEND20", 20, 250))
	if breakdown.PlatformFee != 47 {
		t.Errorf("platform fee = %d, want 47", breakdown.PlatformFee)
	}
	if breakdown.Discount != 188 {
		t.Errorf("discount = %d, want 188", breakdown.Discount)
	}
	if breakdown.Total != 799 {
		t.Errorf("total = %d, want 799", breakdown.Total)
	}
}
