package budget

// CreateBudgetRequest represents the request to create a budget
type CreateBudgetRequest struct {
	Category string  `json:"category" validate:"required,min=1,max=100"`
	Month    string  `json:"month" validate:"required"` // YYYY-MM
	Limit    float64 `json:"limit" validate:"required,gt=0"`
}

// UpdateBudgetRequest represents the request to update a budget's limit
type UpdateBudgetRequest struct {
	Limit float64 `json:"limit" validate:"required,gt=0"`
}

// BudgetResponse represents a budget together with its computed progress
type BudgetResponse struct {
	ID        int64   `json:"id"`
	Category  string  `json:"category"`
	Month     string  `json:"month"`
	Limit     float64 `json:"limit"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	Exceeded  bool    `json:"exceeded"`
}

// ToResponse converts a Budget model to a BudgetResponse DTO with the
// given spent amount
func (b *Budget) ToResponse(spent float64) *BudgetResponse {
	return &BudgetResponse{
		ID:        b.ID,
		Category:  b.Category,
		Month:     b.Month,
		Limit:     b.Limit,
		Spent:     spent,
		Remaining: b.Limit - spent,
		Exceeded:  spent > b.Limit,
	}
}
