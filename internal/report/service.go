package report

import (
	"context"
	"errors"
	"time"

	"github.com/fkhayef/budgetbook/internal/transaction"
)

// Common errors
var (
	ErrInvalidMonth = errors.New("month must be in YYYY-MM format")
)

// Service handles report business logic
type Service struct {
	transactionRepo *transaction.Repository
}

// NewService creates a new report service
func NewService(transactionRepo *transaction.Repository) *Service {
	return &Service{transactionRepo: transactionRepo}
}

// MonthlySummary builds the summary for one month of personal transactions
func (s *Service) MonthlySummary(ctx context.Context, month string) (*Summary, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, ErrInvalidMonth
	}

	txns, err := s.transactionRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	return ComputeSummary(month, txns), nil
}
