// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/quando/internal/models"
)

// Store defines the interface for group and selection storage operations.
// It is implemented by the SQLite store (the primary relational backend) and
// by the local bbolt store used as a fallback when the primary is unavailable.
type Store interface {
	// Name identifies the backend in logs and metrics.
	Name() string

	// Ping reports whether the backend is reachable and its schema ready.
	Ping(ctx context.Context) error

	// CreateGroup persists a group together with its ordered participants.
	// Either everything is written or nothing is.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroupBySlug retrieves a group by slug.
	// Returns nil and no error if the group does not exist.
	GetGroupBySlug(ctx context.Context, slug string) (*models.Group, error)

	// ListSelections retrieves all selections of a group, ordered by date key
	// then player name.
	ListSelections(ctx context.Context, groupID string) ([]models.Selection, error)

	// UpsertSelection inserts or updates the selection keyed by
	// (GroupID, DateKey, PlayerName).
	UpsertSelection(ctx context.Context, selection *models.Selection) error

	// Close releases any resources held by the store.
	Close() error
}
