package budget

import (
	"context"
	"errors"
	"time"

	"github.com/fkhayef/budgetbook/internal/transaction"
)

// Common errors
var (
	ErrBudgetNotFound  = errors.New("budget not found")
	ErrDuplicateBudget = errors.New("budget already exists for this category and month")
	ErrInvalidLimit    = errors.New("limit must be greater than zero")
	ErrInvalidMonth    = errors.New("month must be in YYYY-MM format")
)

// Service handles budget business logic
type Service struct {
	repo            *Repository
	transactionRepo *transaction.Repository
}

// NewService creates a new budget service
func NewService(repo *Repository, transactionRepo *transaction.Repository) *Service {
	return &Service{repo: repo, transactionRepo: transactionRepo}
}

// Create validates and records a new budget. At most one budget may exist
// per category per month.
func (s *Service) Create(ctx context.Context, req *CreateBudgetRequest) (*BudgetResponse, error) {
	if req.Limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if _, err := time.Parse("2006-01", req.Month); err != nil {
		return nil, ErrInvalidMonth
	}

	existing, err := s.repo.GetByCategoryAndMonth(ctx, req.Category, req.Month)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateBudget
	}

	budget, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.withSpent(ctx, budget)
}

// GetByID retrieves a budget with its computed progress
func (s *Service) GetByID(ctx context.Context, id int64) (*BudgetResponse, error) {
	budget, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, ErrBudgetNotFound
	}

	return s.withSpent(ctx, budget)
}

// List retrieves budgets with computed progress, optionally filtered by month
func (s *Service) List(ctx context.Context, month string) ([]*BudgetResponse, error) {
	if month != "" {
		if _, err := time.Parse("2006-01", month); err != nil {
			return nil, ErrInvalidMonth
		}
	}

	budgets, err := s.repo.List(ctx, month)
	if err != nil {
		return nil, err
	}

	responses := make([]*BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		resp, err := s.withSpent(ctx, b)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// Update changes a budget's limit. Category and month are fixed at creation;
// a budget for a different slot is a new budget, not an edit.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateBudgetRequest) (*BudgetResponse, error) {
	if req.Limit <= 0 {
		return nil, ErrInvalidLimit
	}

	budget, err := s.repo.Update(ctx, id, req.Limit)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, ErrBudgetNotFound
	}

	return s.withSpent(ctx, budget)
}

// Delete removes a budget
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) withSpent(ctx context.Context, budget *Budget) (*BudgetResponse, error) {
	spent, err := s.transactionRepo.SumExpensesByCategoryAndMonth(ctx, budget.Category, budget.Month)
	if err != nil {
		return nil, err
	}
	return budget.ToResponse(spent), nil
}
