package transaction

import (
	"context"
	"errors"
	"testing"
)

func TestCreateValidation(t *testing.T) {
	// Every case below fails before the repository is touched.
	service := NewService(nil)

	tests := []struct {
		name    string
		req     CreateTransactionRequest
		wantErr error
	}{
		{
			name:    "unknown type",
			req:     CreateTransactionRequest{Type: "transfer", Amount: 10, Category: "Food", Description: "lunch", Date: "2026-08-01"},
			wantErr: ErrInvalidType,
		},
		{
			name:    "zero amount",
			req:     CreateTransactionRequest{Type: "expense", Amount: 0, Category: "Food", Description: "lunch", Date: "2026-08-01"},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			req:     CreateTransactionRequest{Type: "income", Amount: -100, Category: "Salary", Description: "pay", Date: "2026-08-01"},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "malformed date",
			req:     CreateTransactionRequest{Type: "expense", Amount: 10, Category: "Food", Description: "lunch", Date: "08/01/2026"},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), &tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestListRejectsBadMonth(t *testing.T) {
	service := NewService(nil)

	for _, month := range []string{"2026", "2026-13", "August 2026", "2026-8"} {
		if _, _, err := service.List(context.Background(), month, 1, 20); !errors.Is(err, ErrInvalidMonth) {
			t.Errorf("List(%q) error = %v, want %v", month, err, ErrInvalidMonth)
		}
	}
}

func TestUpdateValidation(t *testing.T) {
	service := NewService(nil)

	badType := "transfer"
	badAmount := -1.0
	badDate := "yesterday"

	tests := []struct {
		name    string
		req     UpdateTransactionRequest
		wantErr error
	}{
		{name: "unknown type", req: UpdateTransactionRequest{Type: &badType}, wantErr: ErrInvalidType},
		{name: "negative amount", req: UpdateTransactionRequest{Amount: &badAmount}, wantErr: ErrInvalidAmount},
		{name: "malformed date", req: UpdateTransactionRequest{Date: &badDate}, wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Update(context.Background(), 1, &tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Update() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
