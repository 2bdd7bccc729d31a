package snapshot

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
)

// Common errors
var (
	ErrEmptySnapshot = errors.New("snapshot has no data")
)

// Service handles snapshot export and import
type Service struct {
	repo *Repository
}

// NewService creates a new snapshot service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Export assembles a full snapshot. The six section reads are independent,
// so they run concurrently; the first failure cancels the rest.
func (s *Service) Export(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{ExportedAt: time.Now().UTC()}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		snap.Transactions, err = s.repo.ExportTransactions(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Budgets, err = s.repo.ExportBudgets(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Groups, err = s.repo.ExportGroups(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Members, err = s.repo.ExportMembers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Expenses, err = s.repo.ExportExpenses(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Settlements, err = s.repo.ExportSettlements(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snap, nil
}

// Import replaces all stored data with the snapshot's contents
func (s *Service) Import(ctx context.Context, snap *Snapshot) error {
	if len(snap.Transactions) == 0 && len(snap.Budgets) == 0 && len(snap.Groups) == 0 &&
		len(snap.Members) == 0 && len(snap.Expenses) == 0 && len(snap.Settlements) == 0 {
		return ErrEmptySnapshot
	}

	return s.repo.Import(ctx, snap)
}
