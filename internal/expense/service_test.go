package expense

import (
	"errors"
	"testing"

	"github.com/fkhayef/budgetbook/internal/expense/split"
)

func TestBuildInputsEqual(t *testing.T) {
	req := &CreateExpenseRequest{SplitType: "EQUAL"}

	inputs, err := buildInputs(req, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("buildInputs() error = %v", err)
	}

	if len(inputs) != 3 {
		t.Fatalf("got %d inputs, want 3", len(inputs))
	}
	for i, want := range []int64{1, 2, 3} {
		if inputs[i].MemberID != want {
			t.Errorf("inputs[%d].MemberID = %d, want %d", i, inputs[i].MemberID, want)
		}
		if inputs[i].Amount != nil {
			t.Errorf("inputs[%d].Amount = %v, want nil for EQUAL", i, *inputs[i].Amount)
		}
	}
}

func TestBuildInputsCustom(t *testing.T) {
	req := &CreateExpenseRequest{
		SplitType: "CUSTOM",
		Splits: []*SplitShare{
			{MemberID: 1, Amount: 60},
			{MemberID: 2, Amount: 40},
			{MemberID: 3, Amount: 0},
		},
	}

	inputs, err := buildInputs(req, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("buildInputs() error = %v", err)
	}

	wantAmounts := []float64{60, 40, 0}
	for i, want := range wantAmounts {
		if inputs[i].Amount == nil || *inputs[i].Amount != want {
			t.Errorf("inputs[%d].Amount = %v, want %v", i, inputs[i].Amount, want)
		}
	}
}

func TestBuildInputsCustomOutsider(t *testing.T) {
	req := &CreateExpenseRequest{
		SplitType: "CUSTOM",
		Splits: []*SplitShare{
			{MemberID: 1, Amount: 50},
			{MemberID: 99, Amount: 50},
		},
	}

	_, err := buildInputs(req, []int64{1, 2})
	if !errors.Is(err, ErrMemberNotInGroup) {
		t.Fatalf("buildInputs() error = %v, want ErrMemberNotInGroup", err)
	}
}

func TestBuildInputsCustomUndeclaredMemberIsZero(t *testing.T) {
	// A member without a declared share owes nothing; when the declared
	// shares then fall short of the total, the allocator reports a mismatch,
	// not a missing amount.
	req := &CreateExpenseRequest{
		SplitType: "CUSTOM",
		Splits: []*SplitShare{
			{MemberID: 1, Amount: 40},
			{MemberID: 2, Amount: 40},
		},
	}

	inputs, err := buildInputs(req, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("buildInputs() error = %v", err)
	}

	if inputs[2].Amount == nil || *inputs[2].Amount != 0 {
		t.Fatalf("inputs[2].Amount = %v, want implicit 0", inputs[2].Amount)
	}

	_, err = (&split.CustomStrategy{}).Allocate(100, 1, inputs)
	if !errors.Is(err, split.ErrSplitMismatch) {
		t.Fatalf("Allocate() error = %v, want ErrSplitMismatch", err)
	}
}

func TestBuildInputsCustomUndeclaredMemberFullCoverage(t *testing.T) {
	// When the declared shares already cover the total, an undeclared member
	// simply carries a zero split.
	req := &CreateExpenseRequest{
		SplitType: "CUSTOM",
		Splits: []*SplitShare{
			{MemberID: 1, Amount: 60},
			{MemberID: 2, Amount: 40},
		},
	}

	inputs, err := buildInputs(req, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("buildInputs() error = %v", err)
	}

	outputs, err := (&split.CustomStrategy{}).Allocate(100, 1, inputs)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}

	if outputs[2].MemberID != 3 || outputs[2].Amount != 0 || outputs[2].Paid {
		t.Errorf("outputs[2] = %+v, want member 3 with zero unpaid share", outputs[2])
	}
}
