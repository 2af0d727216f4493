package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"
	_ "time/tzdata"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/quando/internal/config"
	"github.com/mmynk/quando/internal/metrics"
	"github.com/mmynk/quando/internal/middleware"
	"github.com/mmynk/quando/internal/service"
	"github.com/mmynk/quando/internal/storage"
	"github.com/mmynk/quando/internal/storage/local"
	"github.com/mmynk/quando/internal/storage/sqlite"
	"github.com/mmynk/quando/internal/web"
	"github.com/mmynk/quando/pkg/api"
	"github.com/mmynk/quando/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	loc, err := cfg.Location()
	if err != nil {
		slog.Error("Failed to load timezone", "error", err)
		os.Exit(1)
	}
	now := func() time.Time { return time.Now().In(loc) }

	// Local fallback store is required, the SQLite store is not.
	localStore, err := local.Open(cfg.LocalDBPath)
	if err != nil {
		slog.Error("Failed to initialize local storage", "error", err)
		os.Exit(1)
	}
	defer localStore.Close()

	var primary storage.Store
	sqliteStore, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Warn("SQLite storage unavailable", "database", cfg.DBPath, "error", err)
	} else {
		defer sqliteStore.Close()
		primary = sqliteStore
	}

	active := storage.Select(context.Background(), primary, localStore)
	adapter := storage.NewAdapter(active, localStore)
	slog.Info("Storage initialized", "backend", active.Name(), "database", cfg.DBPath, "local", cfg.LocalDBPath)

	m := metrics.New()

	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.RateLimitInterceptor(cfg.CreateRateLimit, cfg.CreateRateBurst, api.GroupServiceCreateGroupProcedure),
	)

	mux := http.NewServeMux()

	// Register Connect services
	groupPath, groupHandler := api.NewGroupServiceHandler(service.NewGroupService(adapter, m, now), interceptors)
	mux.Handle(groupPath, groupHandler)

	availabilityPath, availabilityHandler := api.NewAvailabilityServiceHandler(service.NewAvailabilityService(adapter, m, now), interceptors)
	mux.Handle(availabilityPath, availabilityHandler)

	mux.Handle("/metrics", m.Handler())

	routes, err := web.NewRoutes(cfg.StaticPath)
	if err != nil {
		slog.Error("Failed to resolve static path", "error", err)
		os.Exit(1)
	}
	routes.Register(mux)

	handler := web.LoggingMiddleware(web.CORSMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := cfg.Addr()
	slog.Info("Connect server starting", "address", addr, "timezone", loc.String())
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
