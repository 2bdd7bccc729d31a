package transaction

// CreateTransactionRequest represents the request to create a transaction
type CreateTransactionRequest struct {
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"required,min=1,max=255"`
	Date        string  `json:"date" validate:"required"` // YYYY-MM-DD
}

// UpdateTransactionRequest represents the request to update a transaction
type UpdateTransactionRequest struct {
	Type        *string  `json:"type,omitempty" validate:"omitempty,oneof=income expense"`
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1,max=255"`
	Date        *string  `json:"date,omitempty"`
}

// TransactionResponse represents the response for a transaction
type TransactionResponse struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"created_at"`
}

// ToResponse converts a Transaction model to a TransactionResponse DTO
func (t *Transaction) ToResponse() *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date.Format("2006-01-02"),
		CreatedAt:   t.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
