package service

import (
	"context"
	"fmt"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/quando/internal/board"
	"github.com/mmynk/quando/internal/models"
	"github.com/mmynk/quando/internal/storage"
	"github.com/mmynk/quando/pkg/api"
)

// resolveGroup finds the group addressed by slug. The default slug falls
// back to the built-in demo group when nothing was persisted under it.
func resolveGroup(ctx context.Context, store *storage.Adapter, slug string, now time.Time) (*models.Group, error) {
	if slug == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("slug required"))
	}

	group, err := store.FetchGroupBySlug(ctx, slug)
	if group != nil {
		return group, nil
	}
	if slug == models.DefaultGroupSlug {
		return models.DefaultGroup(now), nil
	}
	if err != nil {
		return nil, connect.NewError(connect.CodeUnavailable, fmt.Errorf("failed to load group %q: %w", slug, err))
	}
	return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("group not found: %s", slug))
}

func toAPIGroup(g *models.Group) *api.Group {
	return &api.Group{
		ID:           g.ID,
		Name:         g.Name,
		Slug:         g.Slug,
		Participants: g.Participants,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func toAPIBoard(b *board.Board) *api.Board {
	out := &api.Board{
		Group: toAPIGroup(b.Group()),
		Days:  make([]api.Day, len(b.Days())),
	}
	for i, day := range b.Days() {
		out.Days[i] = api.Day{
			DateKey:       day.DateKey,
			DayName:       day.DayName,
			MonthName:     day.MonthName,
			DayNumber:     day.DayNumber,
			IsToday:       day.IsToday,
			IsWeekStart:   day.IsWeekStart,
			SelectedCount: b.SelectedCount(day.DateKey),
			FullySelected: b.IsFullySelected(day.DateKey),
			Leds:          b.LedStates(day.DateKey),
			Selections:    b.SelectionsFor(day.DateKey),
		}
	}
	if closest, ok := b.ClosestFullDate(); ok {
		out.ClosestFullDateKey = closest.DateKey
	}
	return out
}
