package expense

import "time"

// Expense represents a group-scoped expense with its splits.
type Expense struct {
	ID          int64     `json:"id"`
	GroupID     int64     `json:"group_id"`
	PayerID     int64     `json:"payer_id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	SplitType   string    `json:"split_type"` // EQUAL, CUSTOM
	CreatedAt   time.Time `json:"created_at"`

	Splits []*Split `json:"splits,omitempty"`
}

// Split represents one member's share of an expense. Paid marks the payer's
// own share; exactly one split per expense carries it.
type Split struct {
	ID        int64   `json:"id"`
	ExpenseID int64   `json:"expense_id"`
	MemberID  int64   `json:"member_id"`
	Amount    float64 `json:"amount"`
	Paid      bool    `json:"paid"`
}
