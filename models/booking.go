package models

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Service done, bill paid"
	PaymentStatusPending PaymentStatus = "Service done, bill pending"
)

type PaymentMethod string

const (
	MethodUPI        PaymentMethod = "upi"
	MethodCard       PaymentMethod = "card"
	MethodNetBanking PaymentMethod = "netbanking"
	MethodWallet     PaymentMethod = "wallet"
	MethodCOD        PaymentMethod = "cod"
)

// ValidPaymentMethod reports whether the method is one the app offers.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodUPI, MethodCard, MethodNetBanking, MethodWallet, MethodCOD:
		return true
	}
	return false
}

// Booking is a confirmed (or historical) service booking.
type Booking struct {
	gorm.Model
	BookingRef    string        `json:"booking_id" gorm:"unique"`
	UserID        uint          `json:"user_id"`
	ProviderID    uint          `json:"provider_id"`
	ProviderName  string        `json:"maid_name"`
	ServiceType   string        `json:"service_type"`
	Amount        int           `json:"amount"`
	PlatformFee   int           `json:"platform_fee"`
	Discount      int           `json:"discount"`
	Total         int           `json:"total"`
	CouponCode    string        `json:"coupon_applied,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_mode"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	BookingDate   time.Time     `json:"booking_date"`
	ServiceDate   time.Time     `json:"service_date"`
	TimeSlotText  string        `json:"time"`
	Address       string        `json:"address"`
	Duration      string        `json:"duration"`
	IsPast        bool          `json:"is_past"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentStatusPending
	}
	return nil
}

type HistoryTab string

const (
	TabAll      HistoryTab = "all"
	TabPast     HistoryTab = "past"
	TabUpcoming HistoryTab = "upcoming"
)

// FilterHistory returns the bookings matching the active tab, sorted
// descending by booking date. The sort is stable so bookings sharing a date
// keep their original relative order.
func FilterHistory(bookings []Booking, tab HistoryTab) ([]Booking, error) {
	switch tab {
	case TabAll, TabPast, TabUpcoming:
	default:
		return nil, fmt.Errorf("invalid tab %q", tab)
	}

	sorted := make([]Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BookingDate.After(sorted[j].BookingDate)
	})

	if tab == TabAll {
		return sorted, nil
	}

	filtered := make([]Booking, 0, len(sorted))
	for _, booking := range sorted {
		if booking.IsPast == (tab == TabPast) {
			filtered = append(filtered, booking)
		}
	}
	return filtered, nil
}
