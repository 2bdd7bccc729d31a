package split

import "math"

// CustomStrategy uses caller-declared per-member amounts (zero allowed), which
// must cover every member and sum to the expense total.
type CustomStrategy struct{}

// Type returns the split type identifier
func (s *CustomStrategy) Type() SplitType {
	return SplitTypeCustom
}

// Validate checks that every member declares a non-negative amount and that
// the declared amounts sum to the total within the epsilon tolerance.
func (s *CustomStrategy) Validate(totalAmount float64, members []Input) error {
	if len(members) == 0 {
		return ErrNoMembers
	}
	if totalAmount < 0 {
		return ErrNegativeAmount
	}

	var declared float64
	for _, m := range members {
		if m.Amount == nil {
			return ErrMissingAmount
		}
		if *m.Amount < 0 {
			return ErrNegativeAmount
		}
		declared += *m.Amount
	}

	if math.Abs(declared-totalAmount) > amountEpsilon {
		return ErrSplitMismatch
	}

	return nil
}

// Allocate returns the declared amounts, rounded to cents, with the payer's
// split marked paid.
func (s *CustomStrategy) Allocate(totalAmount float64, payerID int64, members []Input) ([]Output, error) {
	if err := s.Validate(totalAmount, members); err != nil {
		return nil, err
	}
	if !containsPayer(payerID, members) {
		return nil, ErrInvalidPayer
	}

	outputs := make([]Output, len(members))
	for i, m := range members {
		outputs[i] = Output{
			MemberID: m.MemberID,
			Amount:   fromCents(toCents(*m.Amount)),
			Paid:     m.MemberID == payerID,
		}
	}

	return outputs, nil
}
