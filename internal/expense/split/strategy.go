package split

import (
	"errors"
	"fmt"
	"math"
)

// SplitType defines the type of split strategy
type SplitType string

const (
	SplitTypeEqual  SplitType = "EQUAL"
	SplitTypeCustom SplitType = "CUSTOM"
)

// Input represents one group member going into a split, with the amount
// required by the CUSTOM strategy.
type Input struct {
	MemberID int64    `json:"member_id"`
	Amount   *float64 `json:"amount,omitempty"` // For CUSTOM split
}

// Output is the allocated share for a single member. Paid marks the payer.
type Output struct {
	MemberID int64   `json:"member_id"`
	Amount   float64 `json:"amount"`
	Paid     bool    `json:"paid"`
}

// Strategy is the interface that all split strategies must implement
type Strategy interface {
	// Allocate produces one split per member, the payer's marked paid.
	// The shares always sum exactly to totalAmount.
	Allocate(totalAmount float64, payerID int64, members []Input) ([]Output, error)

	// Type returns the type identifier for this strategy
	Type() SplitType

	// Validate checks if the inputs are valid for this strategy
	Validate(totalAmount float64, members []Input) error
}

// Factory creates split strategies based on the requested type
type Factory struct{}

// NewFactory creates a new factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the appropriate strategy implementation based on the type
func (f *Factory) Create(splitType SplitType) (Strategy, error) {
	switch splitType {
	case SplitTypeEqual:
		return &EqualStrategy{}, nil
	case SplitTypeCustom:
		return &CustomStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown split type: %s", splitType)
	}
}

// CreateFromString creates a strategy from a string type (useful for API requests)
func (f *Factory) CreateFromString(splitType string) (Strategy, error) {
	return f.Create(SplitType(splitType))
}

var (
	ErrNoMembers      = errors.New("at least one member is required")
	ErrNegativeAmount = errors.New("amounts cannot be negative")
	ErrInvalidPayer   = errors.New("payer is not a member of the group")
	ErrMissingAmount  = errors.New("amount required for every member")
	ErrSplitMismatch  = errors.New("split amounts do not sum to the expense total")
)

// amountEpsilon absorbs rounding noise when comparing declared sums against
// the expense total.
const amountEpsilon = 0.01

// toCents converts an amount to integer minor units with half-up rounding.
// Allocation works in cents so shares sum exactly, not just within epsilon.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// fromCents converts integer minor units back to a decimal amount.
func fromCents(cents int64) float64 {
	return float64(cents) / 100
}

// containsPayer reports whether payerID appears among the members.
func containsPayer(payerID int64, members []Input) bool {
	for _, m := range members {
		if m.MemberID == payerID {
			return true
		}
	}
	return false
}
