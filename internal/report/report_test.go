package report

import (
	"reflect"
	"testing"

	"github.com/fkhayef/budgetbook/internal/transaction"
)

func txn(typ transaction.TransactionType, amount float64, category string) *transaction.Transaction {
	return &transaction.Transaction{Type: typ, Amount: amount, Category: category}
}

func TestComputeSummary(t *testing.T) {
	txns := []*transaction.Transaction{
		txn(transaction.TypeIncome, 3000, "Salary"),
		txn(transaction.TypeExpense, 450, "Rent"),
		txn(transaction.TypeExpense, 120.50, "Food"),
		txn(transaction.TypeExpense, 80, "Food"),
		txn(transaction.TypeIncome, 150, "Freelance"),
		txn(transaction.TypeExpense, 200.50, "Transport"),
	}

	summary := ComputeSummary("2026-08", txns)

	if summary.Month != "2026-08" {
		t.Errorf("Month = %q, want %q", summary.Month, "2026-08")
	}
	if summary.TotalIncome != 3150 {
		t.Errorf("TotalIncome = %v, want 3150", summary.TotalIncome)
	}
	if summary.TotalExpense != 851 {
		t.Errorf("TotalExpense = %v, want 851", summary.TotalExpense)
	}
	if summary.Net != 2299 {
		t.Errorf("Net = %v, want 2299", summary.Net)
	}

	want := []CategoryTotal{
		{Category: "Rent", Total: 450},
		{Category: "Food", Total: 200.50},
		{Category: "Transport", Total: 200.50},
	}
	if !reflect.DeepEqual(summary.ByCategory, want) {
		t.Errorf("ByCategory = %v, want %v", summary.ByCategory, want)
	}
}

func TestComputeSummaryEmpty(t *testing.T) {
	summary := ComputeSummary("2026-01", nil)

	if summary.TotalIncome != 0 || summary.TotalExpense != 0 || summary.Net != 0 {
		t.Errorf("empty month produced non-zero totals: %+v", summary)
	}
	if len(summary.ByCategory) != 0 {
		t.Errorf("ByCategory = %v, want empty", summary.ByCategory)
	}
}
