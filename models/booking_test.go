package models

import (
	"testing"
	"time"
)

func historyFixture() []Booking {
	date := func(day int) time.Time {
		return time.Date(2025, 4, day, 0, 0, 0, 0, time.UTC)
	}
	return []Booking{
		{BookingRef: "BD-12345", BookingDate: date(10), IsPast: true},
		{BookingRef: "BD-12346", BookingDate: date(25), IsPast: false},
		{BookingRef: "BD-12347", BookingDate: date(18), IsPast: true},
		{BookingRef: "BD-12348", BookingDate: date(25), IsPast: false},
		{BookingRef: "BD-12349", BookingDate: date(2), IsPast: true},
	}
}

func refs(bookings []Booking) []string {
	out := make([]string, len(bookings))
	for i, b := range bookings {
		out[i] = b.BookingRef
	}
	return out
}

func TestFilterHistory(t *testing.T) {
	tests := []struct {
		name string
		tab  HistoryTab
		want []string
	}{
		{
			name: "all tab sorted descending by booking date",
			tab:  TabAll,
			want: []string{"BD-12346", "BD-12348", "BD-12347", "BD-12345", "BD-12349"},
		},
		{
			name: "upcoming tab keeps only future bookings",
			tab:  TabUpcoming,
			want: []string{"BD-12346", "BD-12348"},
		},
		{
			name: "past tab keeps only completed bookings",
			tab:  TabPast,
			want: []string{"BD-12347", "BD-12345", "BD-12349"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterHistory(historyFixture(), tt.tab)
			if err != nil {
				t.Fatalf("FilterHistory() error = %v", err)
			}
			gotRefs := refs(got)
			if len(gotRefs) != len(tt.want) {
				t.Fatalf("FilterHistory(%q) = %v, want %v", tt.tab, gotRefs, tt.want)
			}
			for i := range gotRefs {
				if gotRefs[i] != tt.want[i] {
					t.Errorf("FilterHistory(%q) = %v, want %v", tt.tab, gotRefs, tt.want)
					break
				}
			}
		})
	}
}

func TestFilterHistoryStableOnEqualDates(t *testing.T) {
	// BD-12346 and BD-12348 share a booking date; insertion order must hold.
	got, err := FilterHistory(historyFixture(), TabUpcoming)
	if err != nil {
		t.Fatalf("FilterHistory() error = %v", err)
	}
	if got[0].BookingRef != "BD-12346" || got[1].BookingRef != "BD-12348" {
		t.Errorf("equal-date bookings reordered: %v", refs(got))
	}
}

func TestFilterHistoryInvalidTab(t *testing.T) {
	if _, err := FilterHistory(historyFixture(), "archived"); err == nil {
		t.Error("expected an error for an unknown tab")
	}
}

func TestFilterHistoryDoesNotMutateInput(t *testing.T) {
	bookings := historyFixture()
	if _, err := FilterHistory(bookings, TabAll); err != nil {
		t.Fatalf("FilterHistory() error = %v", err)
	}
	if bookings[0].BookingRef != "BD-12345" {
		t.Errorf("input slice was reordered, first = %s", bookings[0].BookingRef)
	}
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range []PaymentMethod{MethodUPI, MethodCard, MethodNetBanking, MethodWallet, MethodCOD} {
		if !ValidPaymentMethod(m) {
			t.Errorf("ValidPaymentMethod(%q) = false, want true", m)
		}
	}
	if ValidPaymentMethod("cheque") {
		t.Error(`ValidPaymentMethod("cheque") = true, want false`)
	}
	if ValidPaymentMethod("") {
		t.Error(`ValidPaymentMethod("") = true, want false`)
	}
}
