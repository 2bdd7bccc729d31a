package ledger

import (
	"testing"
	"time"
)

func TestTopActivity(t *testing.T) {
	expenses := []Expense{
		{ID: 1, Amount: 50, Description: "groceries", Date: day(1), Splits: []Split{
			{MemberID: 1, Amount: 25, Paid: true},
			{MemberID: 2, Amount: 25},
		}},
		{ID: 2, Amount: 30, Description: "gas", Date: day(5)},
	}
	settlements := []Settlement{
		{ID: 3, FromMemberID: 2, ToMemberID: 1, Amount: 25, Date: day(3), Memo: "paying back"},
	}

	feed := TopActivity(expenses, settlements, 10)

	if len(feed) != 3 {
		t.Fatalf("got %d activities, want 3", len(feed))
	}

	wantOrder := []int64{2, 3, 1}
	for i, id := range wantOrder {
		if feed[i].ID != id {
			t.Errorf("feed[%d].ID = %d, want %d", i, feed[i].ID, id)
		}
	}

	if feed[2].Kind != ActivityExpense || feed[2].PayerID != 1 {
		t.Errorf("expense activity = %+v, want kind=expense payer=1", feed[2])
	}
	if feed[1].Kind != ActivitySettlement || feed[1].FromMemberID != 2 || feed[1].ToMemberID != 1 {
		t.Errorf("settlement activity = %+v, want kind=settlement from=2 to=1", feed[1])
	}
}

func TestTopActivityTruncates(t *testing.T) {
	var expenses []Expense
	for i := 1; i <= 15; i++ {
		expenses = append(expenses, Expense{ID: int64(i), Amount: 1, Date: day(i)})
	}

	feed := TopActivity(expenses, nil, 10)

	if len(feed) != 10 {
		t.Fatalf("got %d activities, want 10", len(feed))
	}
	if feed[0].ID != 15 {
		t.Errorf("feed[0].ID = %d, want the most recent (15)", feed[0].ID)
	}
}

func TestTopActivityStableTies(t *testing.T) {
	same := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	expenses := []Expense{
		{ID: 1, Amount: 10, Date: same},
		{ID: 2, Amount: 20, Date: same},
	}
	settlements := []Settlement{
		{ID: 3, FromMemberID: 1, ToMemberID: 2, Amount: 5, Date: same},
	}

	feed := TopActivity(expenses, settlements, 0)

	wantOrder := []int64{1, 2, 3}
	for i, id := range wantOrder {
		if feed[i].ID != id {
			t.Errorf("feed[%d].ID = %d, want %d (ties keep insertion order)", i, feed[i].ID, id)
		}
	}
}

func TestTopActivityEmpty(t *testing.T) {
	if feed := TopActivity(nil, nil, 10); len(feed) != 0 {
		t.Errorf("got %d activities for empty history, want 0", len(feed))
	}
}
