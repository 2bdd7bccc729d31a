package budget

import "testing"

func TestToResponse(t *testing.T) {
	tests := []struct {
		name          string
		limit         float64
		spent         float64
		wantRemaining float64
		wantExceeded  bool
	}{
		{name: "untouched", limit: 500, spent: 0, wantRemaining: 500, wantExceeded: false},
		{name: "under limit", limit: 500, spent: 320.50, wantRemaining: 179.50, wantExceeded: false},
		{name: "exactly at limit", limit: 500, spent: 500, wantRemaining: 0, wantExceeded: false},
		{name: "over limit", limit: 500, spent: 612.75, wantRemaining: -112.75, wantExceeded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Budget{ID: 1, Category: "Food", Month: "2026-08", Limit: tt.limit}
			resp := b.ToResponse(tt.spent)

			if resp.Spent != tt.spent {
				t.Errorf("Spent = %v, want %v", resp.Spent, tt.spent)
			}
			if resp.Remaining != tt.wantRemaining {
				t.Errorf("Remaining = %v, want %v", resp.Remaining, tt.wantRemaining)
			}
			if resp.Exceeded != tt.wantExceeded {
				t.Errorf("Exceeded = %v, want %v", resp.Exceeded, tt.wantExceeded)
			}
		})
	}
}
