package group

import (
	"time"

	"github.com/fkhayef/budgetbook/internal/ledger"
)

// CreateGroupRequest represents the request to create a group, optionally
// with its initial members.
type CreateGroupRequest struct {
	Name    string              `json:"name" validate:"required,min=1,max=100"`
	Members []*AddMemberRequest `json:"members,omitempty"`
}

// UpdateGroupRequest represents the request to rename a group
type UpdateGroupRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
}

// AddMemberRequest represents the request to add a member to a group
type AddMemberRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	CreatedAt string            `json:"created_at"`
	Members   []*MemberResponse `json:"members,omitempty"`
}

// MemberResponse represents the response for a group member
type MemberResponse struct {
	ID        int64  `json:"id"`
	GroupID   int64  `json:"group_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// MemberBalanceResponse is a member decorated with its computed net balance.
type MemberBalanceResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Balance float64 `json:"balance"`
	Status  string  `json:"status"` // "is owed $X" / "owes $X" / "settled up"
}

// ActivityResponse is one entry of the merged expense/settlement feed.
type ActivityResponse struct {
	Kind         string  `json:"kind"`
	ID           int64   `json:"id"`
	Amount       float64 `json:"amount"`
	Description  string  `json:"description,omitempty"`
	Date         string  `json:"date"`
	PayerID      int64   `json:"payer_id,omitempty"`
	FromMemberID int64   `json:"from_member_id,omitempty"`
	ToMemberID   int64   `json:"to_member_id,omitempty"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	return &GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt.Format(time.RFC3339),
	}
}

// ToResponse converts a Member model to a MemberResponse DTO
func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:        m.ID,
		GroupID:   m.GroupID,
		Name:      m.Name,
		Email:     m.Email,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

func balanceToResponse(mb ledger.MemberBalance) *MemberBalanceResponse {
	return &MemberBalanceResponse{
		ID:      mb.ID,
		Name:    mb.Name,
		Email:   mb.Email,
		Balance: mb.Balance,
		Status:  ledger.FormatBalance(mb.Balance),
	}
}

func activityToResponse(a ledger.Activity) *ActivityResponse {
	return &ActivityResponse{
		Kind:         string(a.Kind),
		ID:           a.ID,
		Amount:       a.Amount,
		Description:  a.Description,
		Date:         a.Date.Format("2006-01-02"),
		PayerID:      a.PayerID,
		FromMemberID: a.FromMemberID,
		ToMemberID:   a.ToMemberID,
	}
}
