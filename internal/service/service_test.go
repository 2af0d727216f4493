package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/quando/internal/metrics"
	"github.com/mmynk/quando/internal/models"
	"github.com/mmynk/quando/internal/storage"
	"github.com/mmynk/quando/internal/storage/local"
	"github.com/mmynk/quando/internal/storage/sqlite"
	"github.com/mmynk/quando/pkg/api"
)

var testNow = time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

var errRefused = errors.New("write refused")

// failingStore is a working local store whose writes are refused.
type failingStore struct {
	*local.Store
}

func (failingStore) Name() string { return "failing" }

func (failingStore) CreateGroup(context.Context, *models.Group) error {
	return errRefused
}

func (failingStore) UpsertSelection(context.Context, *models.Selection) error {
	return errRefused
}

type testClients struct {
	groups       api.GroupServiceClient
	availability api.AvailabilityServiceClient
	metrics      *metrics.Metrics
}

func openLocal(t *testing.T, name string) *local.Store {
	t.Helper()
	store, err := local.Open(filepath.Join(t.TempDir(), name))
	if err != nil {
		t.Fatalf("failed to open local store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func openSQLite(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// setupTestServer serves both services over the given stores.
func setupTestServer(t *testing.T, active, fallback storage.Store) testClients {
	t.Helper()

	adapter := storage.NewAdapter(active, fallback)
	m := metrics.New()

	mux := http.NewServeMux()
	mux.Handle(api.NewGroupServiceHandler(NewGroupService(adapter, m, fixedClock)))
	mux.Handle(api.NewAvailabilityServiceHandler(NewAvailabilityService(adapter, m, fixedClock)))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return testClients{
		groups:       api.NewGroupServiceClient(http.DefaultClient, server.URL),
		availability: api.NewAvailabilityServiceClient(http.DefaultClient, server.URL),
		metrics:      m,
	}
}

func setupSQLiteServer(t *testing.T) testClients {
	return setupTestServer(t, openSQLite(t), openLocal(t, "local.db"))
}

func createGroup(t *testing.T, c testClients, name string, participants ...string) *api.CreateGroupResponse {
	t.Helper()
	resp, err := c.groups.CreateGroup(context.Background(), connect.NewRequest(&api.CreateGroupRequest{
		Name:         name,
		Participants: participants,
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return resp.Msg
}

func toggle(c testClients, slug, dateKey, participant string) (*api.ToggleSelectionResponse, error) {
	resp, err := c.availability.ToggleSelection(context.Background(), connect.NewRequest(&api.ToggleSelectionRequest{
		Slug:        slug,
		DateKey:     dateKey,
		Participant: participant,
	}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

func getBoard(t *testing.T, c testClients, slug string) *api.Board {
	t.Helper()
	resp, err := c.availability.GetBoard(context.Background(), connect.NewRequest(&api.GetBoardRequest{Slug: slug}))
	if err != nil {
		t.Fatalf("GetBoard failed: %v", err)
	}
	return resp.Msg.Board
}
