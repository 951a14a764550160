package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

// CreateGroup persists a new group.
func (s *queries) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	_, err := s.q.ExecContext(ctx,
		"INSERT INTO groups (id, name, created_at) VALUES (?, ?, ?)",
		group.ID, group.Name, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", classify(err))
	}

	return nil
}

// GetGroup retrieves a group by ID.
func (s *queries) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group := &models.Group{}
	err := s.q.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM groups WHERE id = ?",
		groupID,
	).Scan(&group.ID, &group.Name, &group.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: group %s", storage.ErrNotFound, groupID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// GroupExistsByName reports whether a group with exactly this name exists.
func (s *queries) GroupExistsByName(ctx context.Context, name string) (bool, error) {
	var exists int
	err := s.q.QueryRowContext(ctx, "SELECT 1 FROM groups WHERE name = ?", name).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check group name: %w", err)
	}
	return true, nil
}

// DeleteGroup removes a group and, through the cascade, its memberships.
func (s *queries) DeleteGroup(ctx context.Context, groupID string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: group %s", storage.ErrNotFound, groupID)
	}
	return nil
}

// ListGroupsByUser returns the groups the user belongs to, ordered by name.
func (s *queries) ListGroupsByUser(ctx context.Context, userID string) ([]*models.Group, error) {
	return s.listGroups(ctx, `
		SELECT g.id, g.name, g.created_at
		FROM groups g
		JOIN group_members gm ON gm.group_id = g.id
		WHERE gm.user_id = ?
		ORDER BY g.name`,
		userID,
	)
}

// ListGroupsNotJoined returns the groups the user does not belong to, ordered by name.
func (s *queries) ListGroupsNotJoined(ctx context.Context, userID string) ([]*models.Group, error) {
	return s.listGroups(ctx, `
		SELECT id, name, created_at
		FROM groups
		WHERE id NOT IN (SELECT group_id FROM group_members WHERE user_id = ?)
		ORDER BY name`,
		userID,
	)
}

func (s *queries) listGroups(ctx context.Context, query string, args ...any) ([]*models.Group, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group := &models.Group{}
		if err := rows.Scan(&group.ID, &group.Name, &group.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}

// IsMember reports whether the user belongs to the group.
func (s *queries) IsMember(ctx context.Context, groupID, userID string) (bool, error) {
	var exists int
	err := s.q.QueryRowContext(ctx,
		"SELECT 1 FROM group_members WHERE group_id = ? AND user_id = ?",
		groupID, userID,
	).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return true, nil
}

// AddMember inserts a membership row. The primary key rejects duplicates.
func (s *queries) AddMember(ctx context.Context, m *models.Membership) error {
	if m.JoinedAt == 0 {
		m.JoinedAt = time.Now().Unix()
	}

	_, err := s.q.ExecContext(ctx,
		"INSERT INTO group_members (group_id, user_id, joined_at) VALUES (?, ?, ?)",
		m.GroupID, m.UserID, m.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", classify(err))
	}
	return nil
}

// RemoveMember deletes a membership row.
func (s *queries) RemoveMember(ctx context.Context, groupID, userID string) error {
	res, err := s.q.ExecContext(ctx,
		"DELETE FROM group_members WHERE group_id = ? AND user_id = ?",
		groupID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: membership of %s in group %s", storage.ErrNotFound, userID, groupID)
	}
	return nil
}
