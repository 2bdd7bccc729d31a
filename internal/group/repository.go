package group

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles group and member data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateWithMembers inserts a group together with its initial members in one
// transaction. A failed member insert rolls the group row back too, so no
// partial group is ever visible.
func (r *Repository) CreateWithMembers(ctx context.Context, req *CreateGroupRequest) (*Group, []*Member, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin group creation: %w", err)
	}
	defer tx.Rollback()

	group := &Group{}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO groups (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`, req.Name).Scan(&group.ID, &group.Name, &group.CreatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create group: %w", err)
	}

	members := make([]*Member, 0, len(req.Members))
	for _, m := range req.Members {
		member := &Member{}
		err = tx.QueryRowContext(ctx, `
			INSERT INTO members (group_id, name, email)
			VALUES ($1, $2, $3)
			RETURNING id, group_id, name, email, created_at
		`, group.ID, m.Name, m.Email).Scan(
			&member.ID,
			&member.GroupID,
			&member.Name,
			&member.Email,
			&member.CreatedAt,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to add member: %w", err)
		}
		members = append(members, member)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit group creation: %w", err)
	}

	return group, members, nil
}

// GetByID retrieves a group by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Group, error) {
	query := `SELECT id, name, created_at FROM groups WHERE id = $1`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// List retrieves all groups with pagination
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Group, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM groups`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count groups: %w", err)
	}

	query := `
		SELECT id, name, created_at
		FROM groups
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		group := &Group{}
		if err := rows.Scan(&group.ID, &group.Name, &group.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}

	return groups, total, nil
}

// Update modifies an existing group
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateGroupRequest) (*Group, error) {
	query := `
		UPDATE groups
		SET name = COALESCE($2, name)
		WHERE id = $1
		RETURNING id, name, created_at
	`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, id, req.Name).Scan(
		&group.ID,
		&group.Name,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return group, nil
}

// Delete removes a group; members, expenses and settlements cascade
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// AddMember inserts a new member into a group
func (r *Repository) AddMember(ctx context.Context, groupID int64, req *AddMemberRequest) (*Member, error) {
	query := `
		INSERT INTO members (group_id, name, email)
		VALUES ($1, $2, $3)
		RETURNING id, group_id, name, email, created_at
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, groupID, req.Name, req.Email).Scan(
		&member.ID,
		&member.GroupID,
		&member.Name,
		&member.Email,
		&member.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return member, nil
}

// GetMembers retrieves all members of a group
func (r *Repository) GetMembers(ctx context.Context, groupID int64) ([]*Member, error) {
	query := `
		SELECT id, group_id, name, email, created_at
		FROM members
		WHERE group_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		member := &Member{}
		if err := rows.Scan(
			&member.ID,
			&member.GroupID,
			&member.Name,
			&member.Email,
			&member.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	return members, nil
}

// GetMember retrieves a single member of a group
func (r *Repository) GetMember(ctx context.Context, groupID, memberID int64) (*Member, error) {
	query := `
		SELECT id, group_id, name, email, created_at
		FROM members
		WHERE group_id = $1 AND id = $2
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, groupID, memberID).Scan(
		&member.ID,
		&member.GroupID,
		&member.Name,
		&member.Email,
		&member.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

// RemoveMember removes a member from a group
func (r *Repository) RemoveMember(ctx context.Context, groupID, memberID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM members WHERE group_id = $1 AND id = $2`, groupID, memberID)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

// GroupExists reports whether a group with the given id exists
func (r *Repository) GroupExists(ctx context.Context, groupID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, groupID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check group existence: %w", err)
	}
	return exists, nil
}

// ListMemberIDs retrieves the ids of all members of a group
func (r *Repository) ListMemberIDs(ctx context.Context, groupID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM members WHERE group_id = $1 ORDER BY id`, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list member ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan member id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
