package storage

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/quando/internal/models"
)

// Select returns primary when it answers a ping, fallback otherwise.
func Select(ctx context.Context, primary, fallback Store) Store {
	if primary == nil {
		return fallback
	}
	if err := primary.Ping(ctx); err != nil {
		slog.Warn("Primary store unavailable, using fallback",
			"primary", primary.Name(),
			"fallback", fallback.Name(),
			"error", err,
		)
		return fallback
	}
	return primary
}

// Adapter exposes the active store through calls that never fail the
// caller: read errors degrade to empty results and write errors to false,
// and both are logged.
//
// Groups are also mirrored to the local store on creation, so a group
// created while the primary was down (or whose primary write failed) can
// still be found later.
type Adapter struct {
	active Store
	local  Store
	now    func() time.Time
}

// NewAdapter creates an Adapter over the active store and the local mirror.
// local may be the same store as active.
func NewAdapter(active, local Store) *Adapter {
	return &Adapter{active: active, local: local, now: time.Now}
}

// Backend returns the name of the active store.
func (a *Adapter) Backend() string {
	return a.active.Name()
}

// FetchSelections returns the persisted selections of a group, or an empty
// slice when the store fails.
func (a *Adapter) FetchSelections(ctx context.Context, groupID string) []models.Selection {
	selections, err := a.active.ListSelections(ctx, groupID)
	if err != nil {
		slog.Error("Failed to fetch selections",
			"backend", a.active.Name(),
			"group_id", groupID,
			"error", err,
		)
		return []models.Selection{}
	}
	return selections
}

// UpsertSelection persists one flag and reports whether it was stored.
func (a *Adapter) UpsertSelection(ctx context.Context, groupID, dateKey, playerName string, selected bool) bool {
	now := a.now()
	err := a.active.UpsertSelection(ctx, &models.Selection{
		GroupID:    groupID,
		DateKey:    dateKey,
		PlayerName: playerName,
		IsSelected: selected,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		slog.Error("Failed to upsert selection",
			"backend", a.active.Name(),
			"group_id", groupID,
			"date_key", dateKey,
			"player", playerName,
			"error", err,
		)
		return false
	}
	return true
}

// FetchGroupBySlug looks the slug up in the active store, then in the local
// mirror. Returns nil when neither has it.
func (a *Adapter) FetchGroupBySlug(ctx context.Context, slug string) (*models.Group, error) {
	group, err := a.active.GetGroupBySlug(ctx, slug)
	if err != nil {
		slog.Error("Failed to fetch group", "backend", a.active.Name(), "slug", slug, "error", err)
	}
	if group != nil || a.local == nil || a.local == a.active {
		return group, err
	}

	mirrored, localErr := a.local.GetGroupBySlug(ctx, slug)
	if localErr != nil {
		slog.Error("Failed to fetch group", "backend", a.local.Name(), "slug", slug, "error", localErr)
		if err == nil {
			err = localErr
		}
	}
	if mirrored != nil {
		return mirrored, nil
	}
	return nil, err
}

// SlugExists reports whether any known group uses slug. Lookup failures
// count as "free"; the unique index of the store still guards creation.
func (a *Adapter) SlugExists(ctx context.Context, slug string) bool {
	group, _ := a.FetchGroupBySlug(ctx, slug)
	return group != nil
}

// CreateGroup writes the group to the active store and always mirrors it to
// the local store. The result reflects the active store only.
func (a *Adapter) CreateGroup(ctx context.Context, group *models.Group) bool {
	ok := true
	if err := a.active.CreateGroup(ctx, group); err != nil {
		slog.Error("Failed to create group",
			"backend", a.active.Name(),
			"group_id", group.ID,
			"slug", group.Slug,
			"error", err,
		)
		ok = false
	}

	if a.local != nil && a.local != a.active {
		if err := a.local.CreateGroup(ctx, group); err != nil {
			slog.Error("Failed to mirror group locally", "group_id", group.ID, "slug", group.Slug, "error", err)
		}
	}
	return ok
}
