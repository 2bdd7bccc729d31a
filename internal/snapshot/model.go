package snapshot

import (
	"time"

	"github.com/fkhayef/budgetbook/internal/budget"
	"github.com/fkhayef/budgetbook/internal/expense"
	"github.com/fkhayef/budgetbook/internal/group"
	"github.com/fkhayef/budgetbook/internal/settlement"
	"github.com/fkhayef/budgetbook/internal/transaction"
)

// Snapshot is a full copy of the application's data, suitable for backup
// and restore. Row ids are preserved so cross-table references survive a
// round trip.
type Snapshot struct {
	ExportedAt   time.Time                  `json:"exported_at"`
	Transactions []*transaction.Transaction `json:"transactions"`
	Budgets      []*budget.Budget           `json:"budgets"`
	Groups       []*group.Group             `json:"groups"`
	Members      []*group.Member            `json:"members"`
	Expenses     []*expense.Expense         `json:"expenses"`
	Settlements  []*settlement.Settlement   `json:"settlements"`
}
