package snapshot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fkhayef/budgetbook/internal/budget"
	"github.com/fkhayef/budgetbook/internal/expense"
	"github.com/fkhayef/budgetbook/internal/group"
	"github.com/fkhayef/budgetbook/internal/settlement"
	"github.com/fkhayef/budgetbook/internal/transaction"
)

// Repository reads and writes whole-database snapshots. It carries its own
// queries instead of borrowing the feature repositories because export needs
// every row with its id, and import needs to write ids back verbatim.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new snapshot repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ExportTransactions reads every personal transaction
func (r *Repository) ExportTransactions(ctx context.Context) ([]*transaction.Transaction, error) {
	query := `
		SELECT id, type, amount, category, description, date, created_at, updated_at
		FROM transactions
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to export transactions: %w", err)
	}
	defer rows.Close()

	txns := []*transaction.Transaction{}
	for rows.Next() {
		t := &transaction.Transaction{}
		if err := rows.Scan(&t.ID, &t.Type, &t.Amount, &t.Category, &t.Description, &t.Date, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, t)
	}

	return txns, nil
}

// ExportBudgets reads every budget
func (r *Repository) ExportBudgets(ctx context.Context) ([]*budget.Budget, error) {
	query := `SELECT id, category, month, limit_amount, created_at FROM budgets ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to export budgets: %w", err)
	}
	defer rows.Close()

	budgets := []*budget.Budget{}
	for rows.Next() {
		b := &budget.Budget{}
		if err := rows.Scan(&b.ID, &b.Category, &b.Month, &b.Limit, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}

	return budgets, nil
}

// ExportGroups reads every group
func (r *Repository) ExportGroups(ctx context.Context) ([]*group.Group, error) {
	query := `SELECT id, name, created_at FROM groups ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to export groups: %w", err)
	}
	defer rows.Close()

	groups := []*group.Group{}
	for rows.Next() {
		g := &group.Group{}
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}

	return groups, nil
}

// ExportMembers reads every member across all groups
func (r *Repository) ExportMembers(ctx context.Context) ([]*group.Member, error) {
	query := `SELECT id, group_id, name, email, created_at FROM members ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to export members: %w", err)
	}
	defer rows.Close()

	members := []*group.Member{}
	for rows.Next() {
		m := &group.Member{}
		if err := rows.Scan(&m.ID, &m.GroupID, &m.Name, &m.Email, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	return members, nil
}

// ExportExpenses reads every group expense together with its splits
func (r *Repository) ExportExpenses(ctx context.Context) ([]*expense.Expense, error) {
	query := `
		SELECT id, group_id, payer_id, amount, category, description, date, split_type, created_at
		FROM group_expenses
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to export expenses: %w", err)
	}
	defer rows.Close()

	expenses := []*expense.Expense{}
	byID := make(map[int64]*expense.Expense)
	for rows.Next() {
		e := &expense.Expense{}
		if err := rows.Scan(&e.ID, &e.GroupID, &e.PayerID, &e.Amount, &e.Category, &e.Description, &e.Date, &e.SplitType, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
		byID[e.ID] = e
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("failed to export expenses: %w", err)
	}

	splitRows, err := r.db.QueryContext(ctx, `SELECT id, expense_id, member_id, amount, paid FROM splits ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to export splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		s := &expense.Split{}
		if err := splitRows.Scan(&s.ID, &s.ExpenseID, &s.MemberID, &s.Amount, &s.Paid); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		if e, ok := byID[s.ExpenseID]; ok {
			e.Splits = append(e.Splits, s)
		}
	}

	return expenses, nil
}

// ExportSettlements reads every settlement
func (r *Repository) ExportSettlements(ctx context.Context) ([]*settlement.Settlement, error) {
	query := `
		SELECT id, group_id, from_member_id, to_member_id, amount, date, memo, created_at
		FROM settlements
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to export settlements: %w", err)
	}
	defer rows.Close()

	settlements := []*settlement.Settlement{}
	for rows.Next() {
		s := &settlement.Settlement{}
		if err := rows.Scan(&s.ID, &s.GroupID, &s.FromMemberID, &s.ToMemberID, &s.Amount, &s.Date, &s.Memo, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}

	return settlements, nil
}

// Import replaces the entire database contents with the snapshot in a single
// transaction. Rows are inserted with their original ids, then each sequence
// is realigned so later inserts do not collide.
func (r *Repository) Import(ctx context.Context, snap *Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	// Children before parents.
	tables := []string{"splits", "settlements", "group_expenses", "members", "groups", "budgets", "transactions"}
	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, t := range snap.Transactions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO transactions (id, type, amount, category, description, date, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			t.ID, t.Type, t.Amount, t.Category, t.Description, t.Date, t.CreatedAt, t.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to import transaction %d: %w", t.ID, err)
		}
	}

	for _, b := range snap.Budgets {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO budgets (id, category, month, limit_amount, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			b.ID, b.Category, b.Month, b.Limit, b.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to import budget %d: %w", b.ID, err)
		}
	}

	for _, g := range snap.Groups {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO groups (id, name, created_at)
			VALUES ($1, $2, $3)`,
			g.ID, g.Name, g.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to import group %d: %w", g.ID, err)
		}
	}

	for _, m := range snap.Members {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO members (id, group_id, name, email, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			m.ID, m.GroupID, m.Name, m.Email, m.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to import member %d: %w", m.ID, err)
		}
	}

	for _, e := range snap.Expenses {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO group_expenses (id, group_id, payer_id, amount, category, description, date, split_type, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			e.ID, e.GroupID, e.PayerID, e.Amount, e.Category, e.Description, e.Date, e.SplitType, e.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to import expense %d: %w", e.ID, err)
		}

		for _, s := range e.Splits {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO splits (id, expense_id, member_id, amount, paid)
				VALUES ($1, $2, $3, $4, $5)`,
				s.ID, s.ExpenseID, s.MemberID, s.Amount, s.Paid,
			)
			if err != nil {
				return fmt.Errorf("failed to import split %d: %w", s.ID, err)
			}
		}
	}

	for _, s := range snap.Settlements {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO settlements (id, group_id, from_member_id, to_member_id, amount, date, memo, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			s.ID, s.GroupID, s.FromMemberID, s.ToMemberID, s.Amount, s.Date, s.Memo, s.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to import settlement %d: %w", s.ID, err)
		}
	}

	sequences := []string{"transactions", "budgets", "groups", "members", "group_expenses", "splits", "settlements"}
	for _, table := range sequences {
		query := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)`,
			table, table,
		)
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to realign %s sequence: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	return nil
}
