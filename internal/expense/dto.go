package expense

// SplitShare declares one member's share for a CUSTOM split.
type SplitShare struct {
	MemberID int64   `json:"member_id" validate:"required"`
	Amount   float64 `json:"amount" validate:"gte=0"`
}

// CreateExpenseRequest represents the request to create a group expense.
// For EQUAL splits the Splits field is ignored; for CUSTOM splits it must
// declare an amount for every member of the group.
type CreateExpenseRequest struct {
	GroupID     int64         `json:"group_id" validate:"required"`
	PayerID     int64         `json:"payer_id" validate:"required"`
	Amount      float64       `json:"amount" validate:"required,gt=0"`
	Category    string        `json:"category" validate:"required,min=1,max=100"`
	Description string        `json:"description" validate:"required,min=1,max=255"`
	Date        string        `json:"date" validate:"required"` // YYYY-MM-DD
	SplitType   string        `json:"split_type" validate:"required,oneof=EQUAL CUSTOM"`
	Splits      []*SplitShare `json:"splits,omitempty"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID          int64            `json:"id"`
	GroupID     int64            `json:"group_id"`
	PayerID     int64            `json:"payer_id"`
	Amount      float64          `json:"amount"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
	SplitType   string           `json:"split_type"`
	CreatedAt   string           `json:"created_at"`
	Splits      []*SplitResponse `json:"splits,omitempty"`
}

// SplitResponse represents the response for a split
type SplitResponse struct {
	ID        int64   `json:"id"`
	ExpenseID int64   `json:"expense_id"`
	MemberID  int64   `json:"member_id"`
	Amount    float64 `json:"amount"`
	Paid      bool    `json:"paid"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	resp := &ExpenseResponse{
		ID:          e.ID,
		GroupID:     e.GroupID,
		PayerID:     e.PayerID,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date.Format("2006-01-02"),
		SplitType:   e.SplitType,
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if len(e.Splits) > 0 {
		resp.Splits = make([]*SplitResponse, len(e.Splits))
		for i, s := range e.Splits {
			resp.Splits[i] = s.ToResponse()
		}
	}
	return resp
}

// ToResponse converts a Split model to a SplitResponse DTO
func (s *Split) ToResponse() *SplitResponse {
	return &SplitResponse{
		ID:        s.ID,
		ExpenseID: s.ExpenseID,
		MemberID:  s.MemberID,
		Amount:    s.Amount,
		Paid:      s.Paid,
	}
}
