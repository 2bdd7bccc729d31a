package expense

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/fkhayef/budgetbook/internal/expense/split"
)

// Repository handles expense and split data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateWithSplits inserts an expense and all its splits in a single
// database transaction, so a failed split insert never leaves an orphaned
// expense behind.
func (r *Repository) CreateWithSplits(ctx context.Context, req *CreateExpenseRequest, date time.Time, outputs []split.Output) (*Expense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	expenseQuery := `
		INSERT INTO group_expenses (group_id, payer_id, amount, category, description, date, split_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, group_id, payer_id, amount, category, description, date, split_type, created_at
	`

	expense := &Expense{}
	err = tx.QueryRowContext(ctx, expenseQuery,
		req.GroupID,
		req.PayerID,
		req.Amount,
		req.Category,
		req.Description,
		date,
		req.SplitType,
	).Scan(
		&expense.ID,
		&expense.GroupID,
		&expense.PayerID,
		&expense.Amount,
		&expense.Category,
		&expense.Description,
		&expense.Date,
		&expense.SplitType,
		&expense.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	splitQuery := `
		INSERT INTO splits (expense_id, member_id, amount, paid)
		VALUES ($1, $2, $3, $4)
		RETURNING id, expense_id, member_id, amount, paid
	`

	expense.Splits = make([]*Split, len(outputs))
	for i, out := range outputs {
		s := &Split{}
		err := tx.QueryRowContext(ctx, splitQuery, expense.ID, out.MemberID, out.Amount, out.Paid).Scan(
			&s.ID,
			&s.ExpenseID,
			&s.MemberID,
			&s.Amount,
			&s.Paid,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create split: %w", err)
		}
		expense.Splits[i] = s
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense: %w", err)
	}

	return expense, nil
}

// GetByID retrieves an expense with its splits
func (r *Repository) GetByID(ctx context.Context, id int64) (*Expense, error) {
	query := `
		SELECT id, group_id, payer_id, amount, category, description, date, split_type, created_at
		FROM group_expenses
		WHERE id = $1
	`

	expense := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID,
		&expense.GroupID,
		&expense.PayerID,
		&expense.Amount,
		&expense.Category,
		&expense.Description,
		&expense.Date,
		&expense.SplitType,
		&expense.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if err := r.attachSplits(ctx, []*Expense{expense}); err != nil {
		return nil, err
	}

	return expense, nil
}

// ListByGroupID retrieves expenses for a group with pagination, splits included
func (r *Repository) ListByGroupID(ctx context.Context, groupID int64, limit, offset int) ([]*Expense, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM group_expenses WHERE group_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, groupID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `
		SELECT id, group_id, payer_id, amount, category, description, date, split_type, created_at
		FROM group_expenses
		WHERE group_id = $1
		ORDER BY date DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	expenses, err := r.queryExpenses(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachSplits(ctx, expenses); err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

// ListAllByGroupID retrieves the full expense history of a group, splits
// included, in creation order. The ledger consumes this.
func (r *Repository) ListAllByGroupID(ctx context.Context, groupID int64) ([]*Expense, error) {
	query := `
		SELECT id, group_id, payer_id, amount, category, description, date, split_type, created_at
		FROM group_expenses
		WHERE group_id = $1
		ORDER BY id
	`

	expenses, err := r.queryExpenses(ctx, query, groupID)
	if err != nil {
		return nil, err
	}

	if err := r.attachSplits(ctx, expenses); err != nil {
		return nil, err
	}

	return expenses, nil
}

// Delete removes an expense; its splits cascade
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM group_expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

func (r *Repository) queryExpenses(ctx context.Context, query string, args ...interface{}) ([]*Expense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		expense := &Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.GroupID,
			&expense.PayerID,
			&expense.Amount,
			&expense.Category,
			&expense.Description,
			&expense.Date,
			&expense.SplitType,
			&expense.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	return expenses, nil
}

// attachSplits loads the splits of all given expenses in one query
func (r *Repository) attachSplits(ctx context.Context, expenses []*Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	byID := make(map[int64]*Expense, len(expenses))
	ids := make([]int64, len(expenses))
	for i, e := range expenses {
		byID[e.ID] = e
		ids[i] = e.ID
	}

	query := `
		SELECT id, expense_id, member_id, amount, paid
		FROM splits
		WHERE expense_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		s := &Split{}
		if err := rows.Scan(&s.ID, &s.ExpenseID, &s.MemberID, &s.Amount, &s.Paid); err != nil {
			return fmt.Errorf("failed to scan split: %w", err)
		}
		byID[s.ExpenseID].Splits = append(byID[s.ExpenseID].Splits, s)
	}

	return nil
}
