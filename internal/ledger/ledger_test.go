package ledger

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

var (
	alice = Member{ID: 1, Name: "Alice", Email: "alice@example.com"}
	bob   = Member{ID: 2, Name: "Bob", Email: "bob@example.com"}
	carol = Member{ID: 3, Name: "Carol", Email: "carol@example.com"}
)

func day(d int) time.Time {
	return time.Date(2026, time.August, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeBalances(t *testing.T) {
	tests := []struct {
		name        string
		members     []Member
		expenses    []Expense
		settlements []Settlement
		want        map[int64]float64
	}{
		{
			name:    "no history yields all zeros",
			members: []Member{alice, bob},
			want:    map[int64]float64{1: 0, 2: 0},
		},
		{
			name:    "single expense equal split",
			members: []Member{alice, bob},
			expenses: []Expense{
				{ID: 10, Amount: 50, Date: day(1), Splits: []Split{
					{MemberID: 1, Amount: 25, Paid: true},
					{MemberID: 2, Amount: 25},
				}},
			},
			want: map[int64]float64{1: 25, 2: -25},
		},
		{
			name:    "settlement closes the loop",
			members: []Member{alice, bob},
			expenses: []Expense{
				{ID: 10, Amount: 50, Date: day(1), Splits: []Split{
					{MemberID: 1, Amount: 25, Paid: true},
					{MemberID: 2, Amount: 25},
				}},
			},
			settlements: []Settlement{
				{ID: 20, FromMemberID: 2, ToMemberID: 1, Amount: 25, Date: day(2)},
			},
			want: map[int64]float64{1: 0, 2: 0},
		},
		{
			name:    "uneven custom split across three members",
			members: []Member{alice, bob, carol},
			expenses: []Expense{
				{ID: 10, Amount: 100, Date: day(1), Splits: []Split{
					{MemberID: 1, Amount: 60, Paid: true},
					{MemberID: 2, Amount: 40},
					{MemberID: 3, Amount: 0},
				}},
			},
			want: map[int64]float64{1: 40, 2: -40, 3: 0},
		},
		{
			name:    "multiple expenses with different payers",
			members: []Member{alice, bob, carol},
			expenses: []Expense{
				{ID: 10, Amount: 90, Date: day(1), Splits: []Split{
					{MemberID: 1, Amount: 30, Paid: true},
					{MemberID: 2, Amount: 30},
					{MemberID: 3, Amount: 30},
				}},
				{ID: 11, Amount: 30, Date: day(2), Splits: []Split{
					{MemberID: 1, Amount: 10},
					{MemberID: 2, Amount: 10, Paid: true},
					{MemberID: 3, Amount: 10},
				}},
			},
			// Alice: +60 -10 = 50, Bob: -30 +20 = -10, Carol: -30 -10 = -40
			want: map[int64]float64{1: 50, 2: -10, 3: -40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBalances(tt.members, tt.expenses, tt.settlements)
			if err != nil {
				t.Fatalf("ComputeBalances() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d balances, want %d", len(got), len(tt.want))
			}
			for id, want := range tt.want {
				if math.Abs(got[id]-want) > 0.001 {
					t.Errorf("balance[%d] = %v, want %v", id, got[id], want)
				}
			}
		})
	}
}

func TestComputeBalancesConservation(t *testing.T) {
	members := []Member{alice, bob, carol}
	expenses := []Expense{
		{ID: 1, Amount: 100, Date: day(1), Splits: []Split{
			{MemberID: 1, Amount: 33.34, Paid: true},
			{MemberID: 2, Amount: 33.33},
			{MemberID: 3, Amount: 33.33},
		}},
		{ID: 2, Amount: 42.50, Date: day(3), Splits: []Split{
			{MemberID: 2, Amount: 20, Paid: true},
			{MemberID: 1, Amount: 12.50},
			{MemberID: 3, Amount: 10},
		}},
		{ID: 3, Amount: 7.77, Date: day(5), Splits: []Split{
			{MemberID: 3, Amount: 7.77, Paid: true},
		}},
	}
	settlements := []Settlement{
		{ID: 4, FromMemberID: 2, ToMemberID: 1, Amount: 15, Date: day(6)},
		{ID: 5, FromMemberID: 3, ToMemberID: 2, Amount: 3.33, Date: day(7)},
	}

	balances, err := ComputeBalances(members, expenses, settlements)
	if err != nil {
		t.Fatalf("ComputeBalances() error = %v", err)
	}

	var sum float64
	for _, b := range balances {
		sum += b
	}
	if math.Abs(sum) > 0.001 {
		t.Errorf("sum of balances = %v, want 0", sum)
	}
}

func TestComputeBalancesIdempotent(t *testing.T) {
	members := []Member{alice, bob}
	expenses := []Expense{
		{ID: 1, Amount: 80, Date: day(1), Splits: []Split{
			{MemberID: 1, Amount: 40, Paid: true},
			{MemberID: 2, Amount: 40},
		}},
	}
	settlements := []Settlement{
		{ID: 2, FromMemberID: 2, ToMemberID: 1, Amount: 10, Date: day(2)},
	}

	first, err := ComputeBalances(members, expenses, settlements)
	if err != nil {
		t.Fatalf("first ComputeBalances() error = %v", err)
	}
	second, err := ComputeBalances(members, expenses, settlements)
	if err != nil {
		t.Fatalf("second ComputeBalances() error = %v", err)
	}

	for id, b := range first {
		if second[id] != b {
			t.Errorf("balance[%d] changed between identical calls: %v then %v", id, b, second[id])
		}
	}
}

func TestComputeBalancesSettlementSymmetry(t *testing.T) {
	members := []Member{alice, bob, carol}
	expenses := []Expense{
		{ID: 1, Amount: 60, Date: day(1), Splits: []Split{
			{MemberID: 1, Amount: 20, Paid: true},
			{MemberID: 2, Amount: 20},
			{MemberID: 3, Amount: 20},
		}},
	}

	before, err := ComputeBalances(members, expenses, nil)
	if err != nil {
		t.Fatalf("ComputeBalances() error = %v", err)
	}

	after, err := ComputeBalances(members, expenses, []Settlement{
		{ID: 2, FromMemberID: 2, ToMemberID: 1, Amount: 12.50, Date: day(2)},
	})
	if err != nil {
		t.Fatalf("ComputeBalances() error = %v", err)
	}

	if diff := after[2] - before[2]; math.Abs(diff+12.50) > 0.001 {
		t.Errorf("payer delta = %v, want -12.50", diff)
	}
	if diff := after[1] - before[1]; math.Abs(diff-12.50) > 0.001 {
		t.Errorf("payee delta = %v, want +12.50", diff)
	}
	if after[3] != before[3] {
		t.Errorf("uninvolved member changed: %v then %v", before[3], after[3])
	}
}

func TestComputeBalancesUnknownMember(t *testing.T) {
	members := []Member{alice, bob}

	t.Run("split references outsider", func(t *testing.T) {
		_, err := ComputeBalances(members, []Expense{
			{ID: 7, Amount: 30, Date: day(1), Splits: []Split{
				{MemberID: 1, Amount: 15, Paid: true},
				{MemberID: 99, Amount: 15},
			}},
		}, nil)
		if !errors.Is(err, ErrUnknownMember) {
			t.Fatalf("error = %v, want ErrUnknownMember", err)
		}
		if !strings.Contains(err.Error(), "99") {
			t.Errorf("error %q does not name the offending member id", err)
		}
	})

	t.Run("settlement references outsider", func(t *testing.T) {
		_, err := ComputeBalances(members, nil, []Settlement{
			{ID: 8, FromMemberID: 1, ToMemberID: 42, Amount: 5, Date: day(1)},
		})
		if !errors.Is(err, ErrUnknownMember) {
			t.Fatalf("error = %v, want ErrUnknownMember", err)
		}
		if !strings.Contains(err.Error(), "42") {
			t.Errorf("error %q does not name the offending member id", err)
		}
	})
}

func TestProject(t *testing.T) {
	members := []Member{alice, bob, carol}
	balances := map[int64]float64{1: 25, 2: -25}

	projected := Project(members, balances)

	if len(projected) != 3 {
		t.Fatalf("got %d projected members, want 3", len(projected))
	}
	for i, m := range members {
		if projected[i].ID != m.ID {
			t.Errorf("projected[%d].ID = %d, want %d (order must be preserved)", i, projected[i].ID, m.ID)
		}
	}
	if projected[0].Balance != 25 || projected[1].Balance != -25 {
		t.Errorf("balances = %v/%v, want 25/-25", projected[0].Balance, projected[1].Balance)
	}
	if projected[2].Balance != 0 {
		t.Errorf("member missing from balance map got %v, want 0", projected[2].Balance)
	}
}

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		balance float64
		want    string
	}{
		{25, "is owed $25.00"},
		{-25, "owes $25.00"},
		{0, "settled up"},
		{0.5, "is owed $0.50"},
		{-1234.56, "owes $1234.56"},
	}

	for _, tt := range tests {
		if got := FormatBalance(tt.balance); got != tt.want {
			t.Errorf("FormatBalance(%v) = %q, want %q", tt.balance, got, tt.want)
		}
	}
}
