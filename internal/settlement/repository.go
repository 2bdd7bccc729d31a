package settlement

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository handles settlement data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new settlement repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new settlement into the database
func (r *Repository) Create(ctx context.Context, req *CreateSettlementRequest, date time.Time) (*Settlement, error) {
	query := `
		INSERT INTO settlements (group_id, from_member_id, to_member_id, amount, date, memo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, group_id, from_member_id, to_member_id, amount, date, memo, created_at
	`

	settlement := &Settlement{}
	err := r.db.QueryRowContext(ctx, query,
		req.GroupID,
		req.FromMemberID,
		req.ToMemberID,
		req.Amount,
		date,
		req.Memo,
	).Scan(
		&settlement.ID,
		&settlement.GroupID,
		&settlement.FromMemberID,
		&settlement.ToMemberID,
		&settlement.Amount,
		&settlement.Date,
		&settlement.Memo,
		&settlement.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create settlement: %w", err)
	}

	return settlement, nil
}

// GetByID retrieves a settlement by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Settlement, error) {
	query := `
		SELECT id, group_id, from_member_id, to_member_id, amount, date, memo, created_at
		FROM settlements
		WHERE id = $1
	`

	settlement := &Settlement{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&settlement.ID,
		&settlement.GroupID,
		&settlement.FromMemberID,
		&settlement.ToMemberID,
		&settlement.Amount,
		&settlement.Date,
		&settlement.Memo,
		&settlement.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}

	return settlement, nil
}

// ListByGroupID retrieves settlements for a group with pagination
func (r *Repository) ListByGroupID(ctx context.Context, groupID int64, limit, offset int) ([]*Settlement, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM settlements WHERE group_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, groupID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count settlements: %w", err)
	}

	query := `
		SELECT id, group_id, from_member_id, to_member_id, amount, date, memo, created_at
		FROM settlements
		WHERE group_id = $1
		ORDER BY date DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	settlements, err := r.querySettlements(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return settlements, total, nil
}

// ListAllByGroupID retrieves the full settlement history of a group in
// creation order. The ledger consumes this.
func (r *Repository) ListAllByGroupID(ctx context.Context, groupID int64) ([]*Settlement, error) {
	query := `
		SELECT id, group_id, from_member_id, to_member_id, amount, date, memo, created_at
		FROM settlements
		WHERE group_id = $1
		ORDER BY id
	`

	return r.querySettlements(ctx, query, groupID)
}

// Delete removes a settlement
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM settlements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete settlement: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrSettlementNotFound
	}

	return nil
}

func (r *Repository) querySettlements(ctx context.Context, query string, args ...interface{}) ([]*Settlement, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*Settlement
	for rows.Next() {
		settlement := &Settlement{}
		if err := rows.Scan(
			&settlement.ID,
			&settlement.GroupID,
			&settlement.FromMemberID,
			&settlement.ToMemberID,
			&settlement.Amount,
			&settlement.Date,
			&settlement.Memo,
			&settlement.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, settlement)
	}

	return settlements, nil
}
