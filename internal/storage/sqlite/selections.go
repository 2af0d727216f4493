package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mmynk/quando/internal/models"
)

// ListSelections retrieves every selection of a group, ordered by date key
// then player name.
func (s *Store) ListSelections(ctx context.Context, groupID string) ([]models.Selection, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT group_id, date_key, player_name, is_selected, created_at, updated_at
		 FROM player_selections WHERE group_id = ? ORDER BY date_key, player_name`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list selections: %w", err)
	}
	defer rows.Close()

	selections := []models.Selection{}
	for rows.Next() {
		var sel models.Selection
		var createdAt, updatedAt int64
		if err := rows.Scan(&sel.GroupID, &sel.DateKey, &sel.PlayerName, &sel.IsSelected, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		sel.CreatedAt = time.Unix(createdAt, 0)
		sel.UpdatedAt = time.Unix(updatedAt, 0)
		selections = append(selections, sel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate selections: %w", err)
	}

	return selections, nil
}

// UpsertSelection writes one flag, keeping the original created_at when the
// row already exists.
func (s *Store) UpsertSelection(ctx context.Context, sel *models.Selection) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO player_selections (group_id, date_key, player_name, is_selected, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (group_id, date_key, player_name)
		 DO UPDATE SET is_selected = excluded.is_selected, updated_at = excluded.updated_at`,
		sel.GroupID, sel.DateKey, sel.PlayerName, sel.IsSelected, unixOrNow(sel.CreatedAt), unixOrNow(sel.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert selection: %w", err)
	}
	return nil
}
