package group

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateWithMembersCommits(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO groups").
		WithArgs("Trip").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(int64(1), "Trip", now))
	mock.ExpectQuery("INSERT INTO members").
		WithArgs(int64(1), "Alice", "alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "group_id", "name", "email", "created_at"}).
			AddRow(int64(10), int64(1), "Alice", "alice@example.com", now))
	mock.ExpectQuery("INSERT INTO members").
		WithArgs(int64(1), "Bob", "bob@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "group_id", "name", "email", "created_at"}).
			AddRow(int64(11), int64(1), "Bob", "bob@example.com", now))
	mock.ExpectCommit()

	repo := NewRepository(db)
	group, members, err := repo.CreateWithMembers(context.Background(), &CreateGroupRequest{
		Name: "Trip",
		Members: []*AddMemberRequest{
			{Name: "Alice", Email: "alice@example.com"},
			{Name: "Bob", Email: "bob@example.com"},
		},
	})
	if err != nil {
		t.Fatalf("CreateWithMembers() error = %v", err)
	}

	if group.ID != 1 {
		t.Errorf("group.ID = %d, want 1", group.ID)
	}
	if len(members) != 2 {
		t.Fatalf("got %d members, want 2", len(members))
	}
	if members[1].ID != 11 || members[1].GroupID != 1 {
		t.Errorf("members[1] = %+v, want id 11 in group 1", members[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateWithMembersRollsBackOnMemberFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO groups").
		WithArgs("Trip").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(int64(1), "Trip", time.Now()))
	mock.ExpectQuery("INSERT INTO members").
		WithArgs(int64(1), "Alice", "alice@example.com").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	repo := NewRepository(db)
	_, _, err = repo.CreateWithMembers(context.Background(), &CreateGroupRequest{
		Name: "Trip",
		Members: []*AddMemberRequest{
			{Name: "Alice", Email: "alice@example.com"},
		},
	})
	if err == nil {
		t.Fatal("CreateWithMembers() error = nil, want member insert failure")
	}

	// The group insert must be rolled back, never committed.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
