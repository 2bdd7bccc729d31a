package transaction

import (
	"context"
	"errors"
	"time"
)

// Common errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidType         = errors.New("type must be income or expense")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInvalidDate         = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMonth        = errors.New("month must be in YYYY-MM format")
)

// Service handles transaction business logic
type Service struct {
	repo *Repository
}

// NewService creates a new transaction service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and records a new transaction
func (s *Service) Create(ctx context.Context, req *CreateTransactionRequest) (*Transaction, error) {
	if !TransactionType(req.Type).Valid() {
		return nil, ErrInvalidType
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return s.repo.Create(ctx, req, date)
}

// GetByID retrieves a transaction by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Transaction, error) {
	txn, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, ErrTransactionNotFound
	}
	return txn, nil
}

// List retrieves transactions, optionally filtered by month
func (s *Service) List(ctx context.Context, month string, page, perPage int) ([]*Transaction, int, error) {
	if month != "" {
		if _, err := time.Parse("2006-01", month); err != nil {
			return nil, 0, ErrInvalidMonth
		}
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, month, perPage, offset)
}

// Update modifies an existing transaction
func (s *Service) Update(ctx context.Context, id int64, req *UpdateTransactionRequest) (*Transaction, error) {
	if req.Type != nil && !TransactionType(*req.Type).Valid() {
		return nil, ErrInvalidType
	}
	if req.Amount != nil && *req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		date = &parsed
	}

	txn, err := s.repo.Update(ctx, id, req, date)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, ErrTransactionNotFound
	}
	return txn, nil
}

// Delete removes a transaction
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
