package split

// EqualStrategy divides the expense evenly among all members, payer included.
type EqualStrategy struct{}

// Type returns the split type identifier
func (s *EqualStrategy) Type() SplitType {
	return SplitTypeEqual
}

// Validate checks if the inputs are valid for an equal split
func (s *EqualStrategy) Validate(totalAmount float64, members []Input) error {
	if len(members) == 0 {
		return ErrNoMembers
	}
	if totalAmount < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// Allocate divides the total evenly, working in integer cents so the shares
// sum exactly to the total: leftover cents after division go one each to the
// earliest members (100.00 across three becomes 33.34/33.33/33.33).
func (s *EqualStrategy) Allocate(totalAmount float64, payerID int64, members []Input) ([]Output, error) {
	if err := s.Validate(totalAmount, members); err != nil {
		return nil, err
	}
	if !containsPayer(payerID, members) {
		return nil, ErrInvalidPayer
	}

	totalCents := toCents(totalAmount)
	share := totalCents / int64(len(members))
	remainder := totalCents - share*int64(len(members))

	outputs := make([]Output, len(members))
	for i, m := range members {
		cents := share
		if int64(i) < remainder {
			cents++
		}
		outputs[i] = Output{
			MemberID: m.MemberID,
			Amount:   fromCents(cents),
			Paid:     m.MemberID == payerID,
		}
	}

	return outputs, nil
}
