package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/quando/internal/board"
	"github.com/mmynk/quando/internal/calendar"
	"github.com/mmynk/quando/internal/metrics"
	"github.com/mmynk/quando/internal/storage"
	"github.com/mmynk/quando/pkg/api"
)

// AvailabilityService implements the Connect AvailabilityService
type AvailabilityService struct {
	api.UnimplementedAvailabilityServiceHandler
	store   *storage.Adapter
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewAvailabilityService creates a new AvailabilityService. now decides which
// calendar day the window starts on.
func NewAvailabilityService(store *storage.Adapter, m *metrics.Metrics, now func() time.Time) *AvailabilityService {
	return &AvailabilityService{store: store, metrics: m, now: now}
}

// GetBoard returns the group's availability over the current window.
func (s *AvailabilityService) GetBoard(ctx context.Context, req *connect.Request[api.GetBoardRequest]) (*connect.Response[api.GetBoardResponse], error) {
	slog.Info("GetBoard request received", "slug", req.Msg.Slug)

	b, err := s.loadBoard(ctx, req.Msg.Slug)
	if err != nil {
		slog.Error("GetBoard failed", "slug", req.Msg.Slug, "error", err)
		return nil, err
	}

	view := toAPIBoard(b)
	slog.Info("GetBoard successful",
		"group_id", view.Group.ID,
		"closest_full_date", view.ClosestFullDateKey,
	)

	return connect.NewResponse(&api.GetBoardResponse{Board: view}), nil
}

// ToggleSelection flips one participant's availability on one day.
func (s *AvailabilityService) ToggleSelection(ctx context.Context, req *connect.Request[api.ToggleSelectionRequest]) (*connect.Response[api.ToggleSelectionResponse], error) {
	msg := req.Msg
	slog.Info("ToggleSelection request received",
		"slug", msg.Slug,
		"date_key", msg.DateKey,
		"participant", msg.Participant,
	)

	if !calendar.ValidDateKey(msg.DateKey) {
		s.metrics.Toggles.WithLabelValues(metrics.ToggleRejected).Inc()
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid date_key %q", msg.DateKey))
	}
	if msg.Participant == "" {
		s.metrics.Toggles.WithLabelValues(metrics.ToggleRejected).Inc()
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("participant required"))
	}

	b, err := s.loadBoard(ctx, msg.Slug)
	if err != nil {
		slog.Error("ToggleSelection failed", "slug", msg.Slug, "error", err)
		return nil, err
	}

	selected, err := b.Toggle(ctx, msg.DateKey, msg.Participant)
	switch {
	case errors.Is(err, board.ErrPersistFailed):
		s.metrics.Toggles.WithLabelValues(metrics.ToggleRolledBack).Inc()
		return nil, connect.NewError(connect.CodeUnavailable, err)
	case err != nil:
		s.metrics.Toggles.WithLabelValues(metrics.ToggleRejected).Inc()
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	s.metrics.Toggles.WithLabelValues(metrics.ToggleSaved).Inc()

	slog.Info("ToggleSelection successful",
		"group_id", b.Group().ID,
		"date_key", msg.DateKey,
		"participant", msg.Participant,
		"selected", selected,
		"fully_selected", b.IsFullySelected(msg.DateKey),
	)

	return connect.NewResponse(&api.ToggleSelectionResponse{
		Board:    toAPIBoard(b),
		Selected: selected,
	}), nil
}

func (s *AvailabilityService) loadBoard(ctx context.Context, slug string) (*board.Board, error) {
	group, err := resolveGroup(ctx, s.store, slug, s.now())
	if err != nil {
		return nil, err
	}

	b := board.New(s.store, board.WithClock(s.now))
	b.Load(ctx, group)

	s.metrics.BoardLoads.Inc()
	full := 0
	for _, day := range b.Days() {
		if b.IsFullySelected(day.DateKey) {
			full++
		}
	}
	s.metrics.FullDays.Observe(float64(full))

	return b, nil
}
