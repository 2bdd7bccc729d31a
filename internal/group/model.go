package group

import "time"

// Group represents a shared-expense group. Its member set defines the closed
// universe of valid split and settlement participants.
type Group struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Member represents an identity within a group. Members are owned by exactly
// one group and referenced by splits and settlements via id.
type Member struct {
	ID        int64     `json:"id"`
	GroupID   int64     `json:"group_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
