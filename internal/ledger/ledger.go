// Package ledger computes per-member net balances for a shared-expense group.
//
// Everything in this package is a pure function over explicit inputs: callers
// fetch members, expenses and settlements from the store, and the ledger folds
// them into balances without touching any stored record. Balances are always
// recomputed from the full history, so they can never drift from it.
package ledger

import (
	"errors"
	"fmt"
	"time"
)

// Common errors
var (
	ErrUnknownMember = errors.New("record references a member outside the group")
)

// Member is the group-member identity the ledger needs.
type Member struct {
	ID    int64
	Name  string
	Email string
}

// Split is one member's share of an expense. Paid marks the payer's own share.
type Split struct {
	MemberID int64
	Amount   float64
	Paid     bool
}

// Expense is a group expense with its splits.
type Expense struct {
	ID          int64
	Amount      float64
	Category    string
	Description string
	Date        time.Time
	Splits      []Split
}

// Settlement is a direct payment from one member to another.
type Settlement struct {
	ID           int64
	FromMemberID int64
	ToMemberID   int64
	Amount       float64
	Date         time.Time
	Memo         string
}

// MemberBalance decorates a member with its computed net balance.
// Positive means the group owes the member; negative means the member owes.
type MemberBalance struct {
	Member
	Balance float64
}

// ComputeBalances folds expenses and settlements into a net balance per member.
//
// For every split: the payer is credited with the part of the bill covered by
// everyone else (amount - own share), non-payers are debited their share. For
// every settlement the payer's balance drops and the payee's rises by the same
// amount. The fold is commutative over addition, so input order is irrelevant,
// and the balances of a well-formed group always sum to zero.
//
// A split or settlement naming a member outside the group is a data-integrity
// fault: the computation fails fast with ErrUnknownMember naming the offending
// id, and no partial result is returned.
func ComputeBalances(members []Member, expenses []Expense, settlements []Settlement) (map[int64]float64, error) {
	balances := make(map[int64]float64, len(members))
	for _, m := range members {
		balances[m.ID] = 0
	}

	for _, e := range expenses {
		for _, s := range e.Splits {
			if _, ok := balances[s.MemberID]; !ok {
				return nil, fmt.Errorf("%w: member %d in expense %d", ErrUnknownMember, s.MemberID, e.ID)
			}
			if s.Paid {
				balances[s.MemberID] += e.Amount - s.Amount
			} else {
				balances[s.MemberID] -= s.Amount
			}
		}
	}

	for _, s := range settlements {
		if _, ok := balances[s.FromMemberID]; !ok {
			return nil, fmt.Errorf("%w: member %d in settlement %d", ErrUnknownMember, s.FromMemberID, s.ID)
		}
		if _, ok := balances[s.ToMemberID]; !ok {
			return nil, fmt.Errorf("%w: member %d in settlement %d", ErrUnknownMember, s.ToMemberID, s.ID)
		}
		balances[s.FromMemberID] -= s.Amount
		balances[s.ToMemberID] += s.Amount
	}

	return balances, nil
}

// Project attaches computed balances to the member list, preserving member
// order. It never mutates its inputs; members missing from the balance map
// (an empty history) come out with a zero balance.
func Project(members []Member, balances map[int64]float64) []MemberBalance {
	projected := make([]MemberBalance, len(members))
	for i, m := range members {
		projected[i] = MemberBalance{
			Member:  m,
			Balance: balances[m.ID],
		}
	}
	return projected
}

// FormatBalance renders a balance the way the group page words it.
func FormatBalance(balance float64) string {
	switch {
	case balance > 0:
		return fmt.Sprintf("is owed $%.2f", balance)
	case balance < 0:
		return fmt.Sprintf("owes $%.2f", -balance)
	default:
		return "settled up"
	}
}
