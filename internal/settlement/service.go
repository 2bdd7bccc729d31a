package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Common errors
var (
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrSelfSettlement     = errors.New("cannot settle with yourself")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInvalidDate        = errors.New("date must be in YYYY-MM-DD format")
	ErrMemberNotInGroup   = errors.New("settlement references a member outside the group")
)

// GroupDirectory provides the member universe of a group. *group.Repository
// satisfies it.
type GroupDirectory interface {
	GroupExists(ctx context.Context, groupID int64) (bool, error)
	ListMemberIDs(ctx context.Context, groupID int64) ([]int64, error)
}

// Service handles settlement business logic
type Service struct {
	repo   *Repository
	groups GroupDirectory
}

// NewService creates a new settlement service
func NewService(repo *Repository, groups GroupDirectory) *Service {
	return &Service{
		repo:   repo,
		groups: groups,
	}
}

// CreateSettlement validates and records a payment between two members of
// the same group. Settlements are plain records: recording one is what
// moves both balances, symmetrically, on the next computation.
func (s *Service) CreateSettlement(ctx context.Context, req *CreateSettlementRequest) (*Settlement, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.FromMemberID == req.ToMemberID {
		return nil, ErrSelfSettlement
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
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

	inGroup := make(map[int64]bool, len(memberIDs))
	for _, id := range memberIDs {
		inGroup[id] = true
	}
	for _, id := range []int64{req.FromMemberID, req.ToMemberID} {
		if !inGroup[id] {
			return nil, fmt.Errorf("%w: member %d", ErrMemberNotInGroup, id)
		}
	}

	return s.repo.Create(ctx, req, date)
}

// GetByID retrieves a settlement by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Settlement, error) {
	settlement, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if settlement == nil {
		return nil, ErrSettlementNotFound
	}
	return settlement, nil
}

// ListByGroupID retrieves settlements for a group
func (s *Service) ListByGroupID(ctx context.Context, groupID int64, page, perPage int) ([]*Settlement, int, error) {
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

// DeleteSettlement removes a settlement
func (s *Service) DeleteSettlement(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
