package budget

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles budget data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new budget repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new budget into the database
func (r *Repository) Create(ctx context.Context, req *CreateBudgetRequest) (*Budget, error) {
	query := `
		INSERT INTO budgets (category, month, limit_amount)
		VALUES ($1, $2, $3)
		RETURNING id, category, month, limit_amount, created_at
	`

	budget := &Budget{}
	err := r.db.QueryRowContext(ctx, query,
		req.Category,
		req.Month,
		req.Limit,
	).Scan(
		&budget.ID,
		&budget.Category,
		&budget.Month,
		&budget.Limit,
		&budget.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return budget, nil
}

// GetByID retrieves a budget by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Budget, error) {
	query := `
		SELECT id, category, month, limit_amount, created_at
		FROM budgets
		WHERE id = $1
	`

	budget := &Budget{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&budget.ID,
		&budget.Category,
		&budget.Month,
		&budget.Limit,
		&budget.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	return budget, nil
}

// GetByCategoryAndMonth retrieves a budget by its category and month.
// Used for the one-budget-per-category-per-month check.
func (r *Repository) GetByCategoryAndMonth(ctx context.Context, category, month string) (*Budget, error) {
	query := `
		SELECT id, category, month, limit_amount, created_at
		FROM budgets
		WHERE category = $1 AND month = $2
	`

	budget := &Budget{}
	err := r.db.QueryRowContext(ctx, query, category, month).Scan(
		&budget.ID,
		&budget.Category,
		&budget.Month,
		&budget.Limit,
		&budget.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	return budget, nil
}

// List retrieves all budgets, optionally filtered by month. An empty month
// means no filter.
func (r *Repository) List(ctx context.Context, month string) ([]*Budget, error) {
	query := `
		SELECT id, category, month, limit_amount, created_at
		FROM budgets
		WHERE ($1 = '' OR month = $1)
		ORDER BY month DESC, category ASC
	`

	rows, err := r.db.QueryContext(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*Budget
	for rows.Next() {
		budget := &Budget{}
		if err := rows.Scan(
			&budget.ID,
			&budget.Category,
			&budget.Month,
			&budget.Limit,
			&budget.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, budget)
	}

	return budgets, nil
}

// Update modifies a budget's limit
func (r *Repository) Update(ctx context.Context, id int64, limit float64) (*Budget, error) {
	query := `
		UPDATE budgets
		SET limit_amount = $2
		WHERE id = $1
		RETURNING id, category, month, limit_amount, created_at
	`

	budget := &Budget{}
	err := r.db.QueryRowContext(ctx, query, id, limit).Scan(
		&budget.ID,
		&budget.Category,
		&budget.Month,
		&budget.Limit,
		&budget.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return budget, nil
}

// Delete removes a budget
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrBudgetNotFound
	}

	return nil
}
