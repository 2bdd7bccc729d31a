package transaction

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository handles transaction data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new transaction repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new transaction into the database
func (r *Repository) Create(ctx context.Context, req *CreateTransactionRequest, date time.Time) (*Transaction, error) {
	query := `
		INSERT INTO transactions (type, amount, category, description, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, type, amount, category, description, date, created_at, updated_at
	`

	txn := &Transaction{}
	err := r.db.QueryRowContext(ctx, query,
		req.Type,
		req.Amount,
		req.Category,
		req.Description,
		date,
	).Scan(
		&txn.ID,
		&txn.Type,
		&txn.Amount,
		&txn.Category,
		&txn.Description,
		&txn.Date,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return txn, nil
}

// GetByID retrieves a transaction by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Transaction, error) {
	query := `
		SELECT id, type, amount, category, description, date, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`

	txn := &Transaction{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&txn.ID,
		&txn.Type,
		&txn.Amount,
		&txn.Category,
		&txn.Description,
		&txn.Date,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return txn, nil
}

// List retrieves transactions with pagination, optionally filtered by month
// (YYYY-MM). An empty month means no filter.
func (r *Repository) List(ctx context.Context, month string, limit, offset int) ([]*Transaction, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM transactions WHERE ($1 = '' OR to_char(date, 'YYYY-MM') = $1)`
	if err := r.db.QueryRowContext(ctx, countQuery, month).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := `
		SELECT id, type, amount, category, description, date, created_at, updated_at
		FROM transactions
		WHERE ($1 = '' OR to_char(date, 'YYYY-MM') = $1)
		ORDER BY date DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, month, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []*Transaction
	for rows.Next() {
		txn := &Transaction{}
		if err := rows.Scan(
			&txn.ID,
			&txn.Type,
			&txn.Amount,
			&txn.Category,
			&txn.Description,
			&txn.Date,
			&txn.CreatedAt,
			&txn.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}

	return txns, total, nil
}

// ListByMonth retrieves all transactions of a month without pagination.
// Reports consume this.
func (r *Repository) ListByMonth(ctx context.Context, month string) ([]*Transaction, error) {
	query := `
		SELECT id, type, amount, category, description, date, created_at, updated_at
		FROM transactions
		WHERE to_char(date, 'YYYY-MM') = $1
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []*Transaction
	for rows.Next() {
		txn := &Transaction{}
		if err := rows.Scan(
			&txn.ID,
			&txn.Type,
			&txn.Amount,
			&txn.Category,
			&txn.Description,
			&txn.Date,
			&txn.CreatedAt,
			&txn.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}

	return txns, nil
}

// SumExpensesByCategoryAndMonth computes the total spent against a category
// in a month. Budgets derive their spent figure from this, never from a
// stored counter.
func (r *Repository) SumExpensesByCategoryAndMonth(ctx context.Context, category, month string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE type = 'expense' AND category = $1 AND to_char(date, 'YYYY-MM') = $2
	`

	var sum float64
	if err := r.db.QueryRowContext(ctx, query, category, month).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return sum, nil
}

// Update modifies an existing transaction
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateTransactionRequest, date *time.Time) (*Transaction, error) {
	query := `
		UPDATE transactions
		SET type = COALESCE($2, type),
		    amount = COALESCE($3, amount),
		    category = COALESCE($4, category),
		    description = COALESCE($5, description),
		    date = COALESCE($6, date),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, type, amount, category, description, date, created_at, updated_at
	`

	txn := &Transaction{}
	err := r.db.QueryRowContext(ctx, query, id,
		req.Type,
		req.Amount,
		req.Category,
		req.Description,
		date,
	).Scan(
		&txn.ID,
		&txn.Type,
		&txn.Amount,
		&txn.Category,
		&txn.Description,
		&txn.Date,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return txn, nil
}

// Delete removes a transaction
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}
