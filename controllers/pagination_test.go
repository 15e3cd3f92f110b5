package controllers

import "testing"

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		page       string
		limit      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "1", "10", 1, 10, 0},
		{"second page", "2", "10", 2, 10, 10},
		{"custom limit", "3", "5", 3, 5, 10},
		{"zero limit falls back", "1", "0", 1, 10, 0},
		{"negative limit falls back", "1", "-5", 1, 10, 0},
		{"non-numeric limit falls back", "1", "ten", 1, 10, 0},
		{"zero page falls back", "0", "10", 1, 10, 0},
		{"non-numeric page falls back", "abc", "10", 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, offset := parsePagination(tt.page, tt.limit)
			if page != tt.wantPage || limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("parsePagination(%q, %q) = (%d, %d, %d), want (%d, %d, %d)",
					tt.page, tt.limit, page, limit, offset,
					tt.wantPage, tt.wantLimit, tt.wantOffset)
			}
			// The page-count expression must be safe for any normalized limit
			if limit < 1 {
				t.Fatalf("normalized limit %d would divide by zero", limit)
			}
		})
	}
}
