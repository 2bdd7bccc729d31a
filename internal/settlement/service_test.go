package settlement

import (
	"context"
	"errors"
	"testing"
)

// fakeDirectory is an in-memory GroupDirectory for validation tests.
type fakeDirectory struct {
	groups map[int64][]int64
}

func (f *fakeDirectory) GroupExists(_ context.Context, groupID int64) (bool, error) {
	_, ok := f.groups[groupID]
	return ok, nil
}

func (f *fakeDirectory) ListMemberIDs(_ context.Context, groupID int64) ([]int64, error) {
	return f.groups[groupID], nil
}

func TestCreateSettlementValidation(t *testing.T) {
	directory := &fakeDirectory{groups: map[int64][]int64{1: {10, 11, 12}}}
	// Every case below fails before the repository is touched.
	service := NewService(nil, directory)

	tests := []struct {
		name    string
		req     CreateSettlementRequest
		wantErr error
	}{
		{
			name:    "zero amount",
			req:     CreateSettlementRequest{GroupID: 1, FromMemberID: 10, ToMemberID: 11, Amount: 0, Date: "2026-08-01"},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			req:     CreateSettlementRequest{GroupID: 1, FromMemberID: 10, ToMemberID: 11, Amount: -5, Date: "2026-08-01"},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "payer equals payee",
			req:     CreateSettlementRequest{GroupID: 1, FromMemberID: 10, ToMemberID: 10, Amount: 25, Date: "2026-08-01"},
			wantErr: ErrSelfSettlement,
		},
		{
			name:    "malformed date",
			req:     CreateSettlementRequest{GroupID: 1, FromMemberID: 10, ToMemberID: 11, Amount: 25, Date: "08/01/2026"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "unknown group",
			req:     CreateSettlementRequest{GroupID: 9, FromMemberID: 10, ToMemberID: 11, Amount: 25, Date: "2026-08-01"},
			wantErr: ErrGroupNotFound,
		},
		{
			name:    "payer outside the group",
			req:     CreateSettlementRequest{GroupID: 1, FromMemberID: 99, ToMemberID: 11, Amount: 25, Date: "2026-08-01"},
			wantErr: ErrMemberNotInGroup,
		},
		{
			name:    "payee outside the group",
			req:     CreateSettlementRequest{GroupID: 1, FromMemberID: 10, ToMemberID: 99, Amount: 25, Date: "2026-08-01"},
			wantErr: ErrMemberNotInGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateSettlement(context.Background(), &tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateSettlement() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
