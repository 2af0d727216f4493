package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/quando/internal/metrics"
	"github.com/mmynk/quando/internal/models"
	"github.com/mmynk/quando/internal/registration"
	"github.com/mmynk/quando/internal/slug"
	"github.com/mmynk/quando/internal/storage"
	"github.com/mmynk/quando/pkg/api"
)

// GroupService implements the Connect GroupService
type GroupService struct {
	api.UnimplementedGroupServiceHandler
	store   *storage.Adapter
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewGroupService creates a new GroupService with the given storage adapter.
func NewGroupService(store *storage.Adapter, m *metrics.Metrics, now func() time.Time) *GroupService {
	return &GroupService{store: store, metrics: m, now: now}
}

// CreateGroup registers a new group under a unique slug.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"participants_count", len(req.Msg.Participants),
	)

	group, errs, ok := registration.Build(req.Msg.Name, req.Msg.Participants, s.now())
	if !ok {
		slog.Info("CreateGroup validation failed", "errors", errs.Summary())
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New(errs.Summary()))
	}

	group.Slug = slug.Unique(ctx, group.Name, s.slugTaken)

	stored := s.store.CreateGroup(ctx, group)
	s.metrics.GroupsCreated.WithLabelValues(s.store.Backend(), strconv.FormatBool(stored)).Inc()
	if !stored {
		slog.Warn("Group kept in local fallback only", "group_id", group.ID, "slug", group.Slug)
	}

	slog.Info("Group created", "group_id", group.ID, "slug", group.Slug, "stored", stored)

	return connect.NewResponse(&api.CreateGroupResponse{
		Group:  toAPIGroup(group),
		Stored: stored,
	}), nil
}

// ValidateGroup runs the registration rules without creating anything.
func (s *GroupService) ValidateGroup(ctx context.Context, req *connect.Request[api.ValidateGroupRequest]) (*connect.Response[api.ValidateGroupResponse], error) {
	valid, errs := registration.Validate(req.Msg.Name, req.Msg.Participants)

	slog.Debug("ValidateGroup", "valid", valid)

	return connect.NewResponse(&api.ValidateGroupResponse{
		Valid: valid,
		Errors: api.FieldErrors{
			GroupName:    errs.GroupName,
			Participants: errs.Participants,
			Rows:         errs.Rows,
		},
	}), nil
}

// GetGroup retrieves a group by slug.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	slog.Info("GetGroup request received", "slug", req.Msg.Slug)

	group, err := resolveGroup(ctx, s.store, req.Msg.Slug, s.now())
	if err != nil {
		slog.Error("GetGroup failed", "slug", req.Msg.Slug, "error", err)
		return nil, err
	}

	slog.Info("GetGroup successful", "group_id", group.ID, "name", group.Name)

	return connect.NewResponse(&api.GetGroupResponse{
		Group: toAPIGroup(group),
	}), nil
}

// slugTaken treats the demo slug as always taken.
func (s *GroupService) slugTaken(ctx context.Context, candidate string) bool {
	return candidate == models.DefaultGroupSlug || s.store.SlugExists(ctx, candidate)
}
