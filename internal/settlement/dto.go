package settlement

// CreateSettlementRequest represents the request to record a settlement
type CreateSettlementRequest struct {
	GroupID      int64   `json:"group_id" validate:"required"`
	FromMemberID int64   `json:"from_member_id" validate:"required"`
	ToMemberID   int64   `json:"to_member_id" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Date         string  `json:"date" validate:"required"` // YYYY-MM-DD
	Memo         *string `json:"memo,omitempty" validate:"omitempty,max=255"`
}

// SettlementResponse represents the response for a settlement
type SettlementResponse struct {
	ID           int64   `json:"id"`
	GroupID      int64   `json:"group_id"`
	FromMemberID int64   `json:"from_member_id"`
	ToMemberID   int64   `json:"to_member_id"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	Memo         *string `json:"memo,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// ToResponse converts a Settlement model to a SettlementResponse DTO
func (s *Settlement) ToResponse() *SettlementResponse {
	return &SettlementResponse{
		ID:           s.ID,
		GroupID:      s.GroupID,
		FromMemberID: s.FromMemberID,
		ToMemberID:   s.ToMemberID,
		Amount:       s.Amount,
		Date:         s.Date.Format("2006-01-02"),
		Memo:         s.Memo,
		CreatedAt:    s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
