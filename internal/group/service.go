package group

import (
	"context"
	"errors"

	"github.com/fkhayef/budgetbook/internal/expense"
	"github.com/fkhayef/budgetbook/internal/ledger"
	"github.com/fkhayef/budgetbook/internal/settlement"
)

// Common errors
var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrMemberNotFound = errors.New("member not found")
)

// Service handles group business logic. It pulls expense and settlement
// history through their repositories and hands it to the ledger, which does
// all balance math as a pure function.
type Service struct {
	repo           *Repository
	expenseRepo    *expense.Repository
	settlementRepo *settlement.Repository
}

// NewService creates a new group service with dependencies injected
func NewService(repo *Repository, expenseRepo *expense.Repository, settlementRepo *settlement.Repository) *Service {
	return &Service{
		repo:           repo,
		expenseRepo:    expenseRepo,
		settlementRepo: settlementRepo,
	}
}

// Create creates a new group together with its initial members, atomically
func (s *Service) Create(ctx context.Context, req *CreateGroupRequest) (*Group, []*Member, error) {
	return s.repo.CreateWithMembers(ctx, req)
}

// GetByIDWithMembers retrieves a group with all its members
func (s *Service) GetByIDWithMembers(ctx context.Context, id int64) (*Group, []*Member, error) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if group == nil {
		return nil, nil, ErrGroupNotFound
	}

	members, err := s.repo.GetMembers(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return group, members, nil
}

// List retrieves all groups with pagination
func (s *Service) List(ctx context.Context, page, perPage int) ([]*Group, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, perPage, offset)
}

// Update renames an existing group
func (s *Service) Update(ctx context.Context, id int64, req *UpdateGroupRequest) (*Group, error) {
	group, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// Delete removes a group and, by cascade, its members, expenses and settlements
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// AddMember adds a member to an existing group
func (s *Service) AddMember(ctx context.Context, groupID int64, req *AddMemberRequest) (*Member, error) {
	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	return s.repo.AddMember(ctx, groupID, req)
}

// RemoveMember removes a member from a group
func (s *Service) RemoveMember(ctx context.Context, groupID, memberID int64) error {
	return s.repo.RemoveMember(ctx, groupID, memberID)
}

// GetBalances computes the net balance of every member of a group from the
// full expense and settlement history.
func (s *Service) GetBalances(ctx context.Context, groupID int64) ([]ledger.MemberBalance, error) {
	members, expenses, settlements, err := s.loadHistory(ctx, groupID)
	if err != nil {
		return nil, err
	}

	balances, err := ledger.ComputeBalances(members, expenses, settlements)
	if err != nil {
		return nil, err
	}

	return ledger.Project(members, balances), nil
}

// GetActivity returns the group's merged expense/settlement feed, most
// recent first, truncated to limit.
func (s *Service) GetActivity(ctx context.Context, groupID int64, limit int) ([]ledger.Activity, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}

	_, expenses, settlements, err := s.loadHistory(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return ledger.TopActivity(expenses, settlements, limit), nil
}

// loadHistory fetches a group's members and full record history, converted
// to the ledger's input types.
func (s *Service) loadHistory(ctx context.Context, groupID int64) ([]ledger.Member, []ledger.Expense, []ledger.Settlement, error) {
	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return nil, nil, nil, err
	}
	if group == nil {
		return nil, nil, nil, ErrGroupNotFound
	}

	members, err := s.repo.GetMembers(ctx, groupID)
	if err != nil {
		return nil, nil, nil, err
	}

	expenses, err := s.expenseRepo.ListAllByGroupID(ctx, groupID)
	if err != nil {
		return nil, nil, nil, err
	}

	settlements, err := s.settlementRepo.ListAllByGroupID(ctx, groupID)
	if err != nil {
		return nil, nil, nil, err
	}

	return toLedgerMembers(members), toLedgerExpenses(expenses), toLedgerSettlements(settlements), nil
}

func toLedgerMembers(members []*Member) []ledger.Member {
	out := make([]ledger.Member, len(members))
	for i, m := range members {
		out[i] = ledger.Member{ID: m.ID, Name: m.Name, Email: m.Email}
	}
	return out
}

func toLedgerExpenses(expenses []*expense.Expense) []ledger.Expense {
	out := make([]ledger.Expense, len(expenses))
	for i, e := range expenses {
		splits := make([]ledger.Split, len(e.Splits))
		for j, s := range e.Splits {
			splits[j] = ledger.Split{MemberID: s.MemberID, Amount: s.Amount, Paid: s.Paid}
		}
		out[i] = ledger.Expense{
			ID:          e.ID,
			Amount:      e.Amount,
			Category:    e.Category,
			Description: e.Description,
			Date:        e.Date,
			Splits:      splits,
		}
	}
	return out
}

func toLedgerSettlements(settlements []*settlement.Settlement) []ledger.Settlement {
	out := make([]ledger.Settlement, len(settlements))
	for i, s := range settlements {
		memo := ""
		if s.Memo != nil {
			memo = *s.Memo
		}
		out[i] = ledger.Settlement{
			ID:           s.ID,
			FromMemberID: s.FromMemberID,
			ToMemberID:   s.ToMemberID,
			Amount:       s.Amount,
			Date:         s.Date,
			Memo:         memo,
		}
	}
	return out
}
