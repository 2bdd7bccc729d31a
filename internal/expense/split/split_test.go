package split

import (
	"errors"
	"math"
	"testing"
)

func amt(v float64) *float64 { return &v }

func TestFactoryCreate(t *testing.T) {
	f := NewFactory()

	equal, err := f.CreateFromString("EQUAL")
	if err != nil {
		t.Fatalf("CreateFromString(EQUAL) error = %v", err)
	}
	if equal.Type() != SplitTypeEqual {
		t.Errorf("Type() = %v, want EQUAL", equal.Type())
	}

	custom, err := f.CreateFromString("CUSTOM")
	if err != nil {
		t.Fatalf("CreateFromString(CUSTOM) error = %v", err)
	}
	if custom.Type() != SplitTypeCustom {
		t.Errorf("Type() = %v, want CUSTOM", custom.Type())
	}

	if _, err := f.CreateFromString("PERCENTAGE"); err == nil {
		t.Error("CreateFromString(PERCENTAGE) = nil error, want unknown split type")
	}
}

func TestEqualAllocate(t *testing.T) {
	tests := []struct {
		name        string
		total       float64
		payerID     int64
		members     []Input
		wantErr     error
		wantAmounts []float64
	}{
		{
			name:        "two members split evenly",
			total:       50,
			payerID:     1,
			members:     []Input{{MemberID: 1}, {MemberID: 2}},
			wantAmounts: []float64{25, 25},
		},
		{
			name:        "remainder cents go to earliest members",
			total:       100,
			payerID:     1,
			members:     []Input{{MemberID: 1}, {MemberID: 2}, {MemberID: 3}},
			wantAmounts: []float64{33.34, 33.33, 33.33},
		},
		{
			name:        "two leftover cents",
			total:       0.05,
			payerID:     2,
			members:     []Input{{MemberID: 1}, {MemberID: 2}, {MemberID: 3}},
			wantAmounts: []float64{0.02, 0.02, 0.01},
		},
		{
			name:        "single member owns the whole expense",
			total:       42.42,
			payerID:     7,
			members:     []Input{{MemberID: 7}},
			wantAmounts: []float64{42.42},
		},
		{
			name:    "payer outside the group",
			total:   50,
			payerID: 9,
			members: []Input{{MemberID: 1}, {MemberID: 2}},
			wantErr: ErrInvalidPayer,
		},
		{
			name:    "no members",
			total:   50,
			payerID: 1,
			wantErr: ErrNoMembers,
		},
		{
			name:    "negative total",
			total:   -1,
			payerID: 1,
			members: []Input{{MemberID: 1}},
			wantErr: ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputs, err := (&EqualStrategy{}).Allocate(tt.total, tt.payerID, tt.members)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Allocate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Allocate() error = %v", err)
			}
			assertAllocation(t, outputs, tt.total, tt.payerID, tt.wantAmounts)
		})
	}
}

func TestCustomAllocate(t *testing.T) {
	tests := []struct {
		name        string
		total       float64
		payerID     int64
		members     []Input
		wantErr     error
		wantAmounts []float64
	}{
		{
			name:        "declared amounts pass through",
			total:       100,
			payerID:     1,
			members:     []Input{{MemberID: 1, Amount: amt(60)}, {MemberID: 2, Amount: amt(40)}},
			wantAmounts: []float64{60, 40},
		},
		{
			name:        "zero share is allowed",
			total:       100,
			payerID:     1,
			members:     []Input{{MemberID: 1, Amount: amt(60)}, {MemberID: 2, Amount: amt(40)}, {MemberID: 3, Amount: amt(0)}},
			wantAmounts: []float64{60, 40, 0},
		},
		{
			name:    "amounts do not cover the total",
			total:   100,
			payerID: 1,
			members: []Input{{MemberID: 1, Amount: amt(40)}, {MemberID: 2, Amount: amt(40)}, {MemberID: 3, Amount: amt(0)}},
			wantErr: ErrSplitMismatch,
		},
		{
			name:    "member without an amount",
			total:   100,
			payerID: 1,
			members: []Input{{MemberID: 1, Amount: amt(100)}, {MemberID: 2}},
			wantErr: ErrMissingAmount,
		},
		{
			name:    "negative share",
			total:   100,
			payerID: 1,
			members: []Input{{MemberID: 1, Amount: amt(110)}, {MemberID: 2, Amount: amt(-10)}},
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "payer outside the group",
			total:   100,
			payerID: 9,
			members: []Input{{MemberID: 1, Amount: amt(50)}, {MemberID: 2, Amount: amt(50)}},
			wantErr: ErrInvalidPayer,
		},
		{
			name:        "sum within epsilon tolerance",
			total:       100,
			payerID:     1,
			members:     []Input{{MemberID: 1, Amount: amt(33.34)}, {MemberID: 2, Amount: amt(33.33)}, {MemberID: 3, Amount: amt(33.33)}},
			wantAmounts: []float64{33.34, 33.33, 33.33},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputs, err := (&CustomStrategy{}).Allocate(tt.total, tt.payerID, tt.members)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Allocate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Allocate() error = %v", err)
			}
			assertAllocation(t, outputs, tt.total, tt.payerID, tt.wantAmounts)
		})
	}
}

// assertAllocation checks the shared allocation invariants: amounts as
// expected, shares summing exactly to the total in cents, and exactly one
// paid split belonging to the payer.
func assertAllocation(t *testing.T, outputs []Output, total float64, payerID int64, wantAmounts []float64) {
	t.Helper()

	if len(outputs) != len(wantAmounts) {
		t.Fatalf("got %d splits, want %d", len(outputs), len(wantAmounts))
	}

	var sumCents, paidCount int64
	for i, out := range outputs {
		if math.Abs(out.Amount-wantAmounts[i]) > 0.001 {
			t.Errorf("split[%d].Amount = %v, want %v", i, out.Amount, wantAmounts[i])
		}
		sumCents += int64(math.Round(out.Amount * 100))
		if out.Paid {
			paidCount++
			if out.MemberID != payerID {
				t.Errorf("paid split belongs to member %d, want payer %d", out.MemberID, payerID)
			}
		}
	}

	if sumCents != int64(math.Round(total*100)) {
		t.Errorf("splits sum to %d cents, want exactly %d", sumCents, int64(math.Round(total*100)))
	}
	if paidCount != 1 {
		t.Errorf("got %d paid splits, want exactly 1", paidCount)
	}
}
