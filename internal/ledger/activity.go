package ledger

import (
	"sort"
	"time"
)

// ActivityKind distinguishes the two record kinds in the merged feed.
type ActivityKind string

const (
	ActivityExpense    ActivityKind = "expense"
	ActivitySettlement ActivityKind = "settlement"
)

// Activity is one entry in a group's merged activity feed.
type Activity struct {
	Kind         ActivityKind
	ID           int64
	Amount       float64
	Description  string
	Date         time.Time
	FromMemberID int64 // settlements only
	ToMemberID   int64 // settlements only
	PayerID      int64 // expenses only
}

// TopActivity merges expenses and settlements into one reverse-chronological
// sequence (most recent first) and truncates it to limit. Ties on date keep
// insertion order: expenses in the order given, then settlements.
func TopActivity(expenses []Expense, settlements []Settlement, limit int) []Activity {
	merged := make([]Activity, 0, len(expenses)+len(settlements))

	for _, e := range expenses {
		var payerID int64
		for _, s := range e.Splits {
			if s.Paid {
				payerID = s.MemberID
				break
			}
		}
		merged = append(merged, Activity{
			Kind:        ActivityExpense,
			ID:          e.ID,
			Amount:      e.Amount,
			Description: e.Description,
			Date:        e.Date,
			PayerID:     payerID,
		})
	}

	for _, s := range settlements {
		merged = append(merged, Activity{
			Kind:         ActivitySettlement,
			ID:           s.ID,
			Amount:       s.Amount,
			Description:  s.Memo,
			Date:         s.Date,
			FromMemberID: s.FromMemberID,
			ToMemberID:   s.ToMemberID,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
