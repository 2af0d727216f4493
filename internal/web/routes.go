// Package web registers the page routes, the static assets and the RPC
// services on one mux.
package web

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// RegisterPath is the registration page.
	RegisterPath = "/register"
	// DefaultGroupPath is where the root redirects.
	DefaultGroupPath = "/group/default"

	groupPrefix  = "/group/"
	staticPrefix = "/static/"
	indexFile    = "index.html"
)

// Routes serves the single page front-end. Every page route returns the
// same index.html; the front-end reads the slug from the URL.
type Routes struct {
	staticDir string
}

// NewRoutes resolves staticPath to an absolute directory.
func NewRoutes(staticPath string) (*Routes, error) {
	dir, err := filepath.Abs(staticPath)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(filepath.Join(dir, indexFile)); err != nil {
		slog.Warn("Front-end index not found", "path", dir, "error", err)
	}
	return &Routes{staticDir: dir}, nil
}

// Register mounts the page routes on mux. RPC handlers and /metrics are
// mounted by the caller on more specific patterns.
func (r *Routes) Register(mux *http.ServeMux) {
	mux.Handle(staticPrefix, http.StripPrefix(staticPrefix, http.FileServer(http.Dir(r.staticDir))))
	mux.HandleFunc(RegisterPath, r.serveIndex)
	mux.HandleFunc(groupPrefix, r.serveGroup)
	mux.HandleFunc("/", r.redirect)
}

func (r *Routes) serveIndex(w http.ResponseWriter, req *http.Request) {
	http.ServeFile(w, req, filepath.Join(r.staticDir, indexFile))
}

func (r *Routes) serveGroup(w http.ResponseWriter, req *http.Request) {
	slug := strings.TrimPrefix(req.URL.Path, groupPrefix)
	if slug == "" || strings.Contains(slug, "/") {
		http.Redirect(w, req, RegisterPath, http.StatusFound)
		return
	}
	r.serveIndex(w, req)
}

// redirect sends the root to the demo group and everything unknown to the
// registration page.
func (r *Routes) redirect(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path == "/" {
		http.Redirect(w, req, DefaultGroupPath, http.StatusFound)
		return
	}
	http.Redirect(w, req, RegisterPath, http.StatusFound)
}

// LoggingMiddleware logs all incoming requests
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// CORSMiddleware adds CORS headers for browser access
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms, X-Request-Id")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, X-Request-Id")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
