package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mmynk/quando/internal/models"
)

// CreateGroup inserts the group row and its participant rows in one
// transaction, so a failure never leaves a group without participants.
func (s *Store) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = models.NewGroupID()
	}
	if group.CreatedAt.IsZero() {
		group.CreatedAt = time.Now()
	}
	if group.UpdatedAt.IsZero() {
		group.UpdatedAt = group.CreatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO groups (id, name, slug, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		group.ID, group.Name, group.Slug, group.CreatedAt.Unix(), group.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	for i, name := range group.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO group_participants (group_id, participant_name, participant_order, created_at) VALUES (?, ?, ?, ?)",
			group.ID, name, i, group.CreatedAt.Unix(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetGroupBySlug retrieves a group and its ordered participants.
func (s *Store) GetGroupBySlug(ctx context.Context, slug string) (*models.Group, error) {
	group := &models.Group{}
	var createdAt, updatedAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, slug, created_at, updated_at FROM groups WHERE slug = ?",
		slug,
	).Scan(&group.ID, &group.Name, &group.Slug, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil // Group not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group by slug: %w", err)
	}
	group.CreatedAt = time.Unix(createdAt, 0)
	group.UpdatedAt = time.Unix(updatedAt, 0)

	rows, err := s.db.QueryContext(ctx,
		"SELECT participant_name FROM group_participants WHERE group_id = ? ORDER BY participant_order",
		group.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		group.Participants = append(group.Participants, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return group, nil
}
