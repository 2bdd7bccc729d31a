package report

import (
	"sort"

	"github.com/fkhayef/budgetbook/internal/transaction"
)

// CategoryTotal is one category's share of a month's spending.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// Summary aggregates one month of personal transactions.
type Summary struct {
	Month        string          `json:"month"`
	TotalIncome  float64         `json:"total_income"`
	TotalExpense float64         `json:"total_expense"`
	Net          float64         `json:"net"`
	ByCategory   []CategoryTotal `json:"by_category"`
}

// ComputeSummary folds a month's transactions into income and expense totals
// plus a per-category expense breakdown, largest category first. Ties break
// alphabetically so the output is deterministic.
func ComputeSummary(month string, txns []*transaction.Transaction) *Summary {
	summary := &Summary{Month: month, ByCategory: []CategoryTotal{}}

	byCategory := make(map[string]float64)
	for _, t := range txns {
		switch t.Type {
		case transaction.TypeIncome:
			summary.TotalIncome += t.Amount
		case transaction.TypeExpense:
			summary.TotalExpense += t.Amount
			byCategory[t.Category] += t.Amount
		}
	}
	summary.Net = summary.TotalIncome - summary.TotalExpense

	for category, total := range byCategory {
		summary.ByCategory = append(summary.ByCategory, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		if summary.ByCategory[i].Total != summary.ByCategory[j].Total {
			return summary.ByCategory[i].Total > summary.ByCategory[j].Total
		}
		return summary.ByCategory[i].Category < summary.ByCategory[j].Category
	})

	return summary
}
