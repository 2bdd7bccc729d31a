package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fkhayef/budgetbook/internal/expense/split"
)

// Common errors
var (
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrGroupNotFound    = errors.New("group not found")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrMemberNotInGroup = errors.New("split references a member outside the group")
)

// GroupDirectory provides the member universe of a group. *group.Repository
// satisfies it; the indirection keeps this package from importing group.
type GroupDirectory interface {
	GroupExists(ctx context.Context, groupID int64) (bool, error)
	ListMemberIDs(ctx context.Context, groupID int64) ([]int64, error)
}

// Service handles expense business logic
type Service struct {
	repo         *Repository
	groups       GroupDirectory
	splitFactory *split.Factory
}

// NewService creates a new expense service with dependencies injected
func NewService(repo *Repository, groups GroupDirectory, splitFactory *split.Factory) *Service {
	return &Service{
		repo:         repo,
		groups:       groups,
		splitFactory: splitFactory,
	}
}

// CreateExpense validates the request against the group's member set, runs
// the split allocator, and persists the expense with its splits in one
// transaction. Nothing is written when any validation fails.
func (s *Service) CreateExpense(ctx context.Context, req *CreateExpenseRequest) (*Expense, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	strategy, err := s.splitFactory.CreateFromString(req.SplitType)
	if err != nil {
		return nil, err
	}

	exists, err := s.groups.GroupExists(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrGroupNotFound
	}

	memberIDs, err := s.groups.ListMemberIDs(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	inputs, err := buildInputs(req, memberIDs)
	if err != nil {
		return nil, err
	}

	outputs, err := strategy.Allocate(req.Amount, req.PayerID, inputs)
	if err != nil {
		return nil, err
	}

	return s.repo.CreateWithSplits(ctx, req, date, outputs)
}

// GetExpenseByID retrieves an expense with its splits
func (s *Service) GetExpenseByID(ctx context.Context, id int64) (*Expense, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

// ListExpensesByGroupID retrieves expenses for a group
func (s *Service) ListExpensesByGroupID(ctx context.Context, groupID int64, page, perPage int) ([]*Expense, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	exists, err := s.groups.GroupExists(ctx, groupID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, ErrGroupNotFound
	}

	offset := (page - 1) * perPage
	return s.repo.ListByGroupID(ctx, groupID, perPage, offset)
}

// DeleteExpense removes an expense and its splits
func (s *Service) DeleteExpense(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// buildInputs converts the request into allocator inputs covering every
// member of the group. For EQUAL splits the member list is enough; CUSTOM
// splits must not name anyone outside the group, and members left undeclared
// get an implicit zero share.
func buildInputs(req *CreateExpenseRequest, memberIDs []int64) ([]split.Input, error) {
	if split.SplitType(req.SplitType) == split.SplitTypeEqual {
		inputs := make([]split.Input, len(memberIDs))
		for i, id := range memberIDs {
			inputs[i] = split.Input{MemberID: id}
		}
		return inputs, nil
	}

	inGroup := make(map[int64]bool, len(memberIDs))
	for _, id := range memberIDs {
		inGroup[id] = true
	}

	declared := make(map[int64]float64, len(req.Splits))
	for _, share := range req.Splits {
		if !inGroup[share.MemberID] {
			return nil, fmt.Errorf("%w: member %d", ErrMemberNotInGroup, share.MemberID)
		}
		declared[share.MemberID] = share.Amount
	}

	inputs := make([]split.Input, len(memberIDs))
	for i, id := range memberIDs {
		// Undeclared members owe nothing; a short sum is the allocator's
		// mismatch to report.
		a := declared[id]
		inputs[i] = split.Input{MemberID: id, Amount: &a}
	}
	return inputs, nil
}
