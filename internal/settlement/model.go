package settlement

import "time"

// Settlement represents a direct payment between two group members outside
// of any expense: the payer discharges debt, the payee receives it.
type Settlement struct {
	ID           int64     `json:"id"`
	GroupID      int64     `json:"group_id"`
	FromMemberID int64     `json:"from_member_id"`
	ToMemberID   int64     `json:"to_member_id"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	Memo         *string   `json:"memo,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
