package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupRoutes(t *testing.T) *httptest.Server {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>quando</h1>"), 0o644); err != nil {
		t.Fatalf("failed to write index: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('ok')"), 0o644); err != nil {
		t.Fatalf("failed to write asset: %v", err)
	}

	routes, err := NewRoutes(dir)
	if err != nil {
		t.Fatalf("NewRoutes failed: %v", err)
	}
	mux := http.NewServeMux()
	routes.Register(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func TestRedirects(t *testing.T) {
	server := setupRoutes(t)
	client := noRedirectClient()

	tests := []struct {
		path     string
		location string
	}{
		{"/", DefaultGroupPath},
		{"/unknown", RegisterPath},
		{"/group/", RegisterPath},
		{"/group/a/b", RegisterPath},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := client.Get(server.URL + tt.path)
			if err != nil {
				t.Fatalf("GET %s failed: %v", tt.path, err)
			}
			resp.Body.Close()

			if resp.StatusCode != http.StatusFound {
				t.Errorf("Expected 302, got %d", resp.StatusCode)
			}
			if got := resp.Header.Get("Location"); got != tt.location {
				t.Errorf("Expected Location %s, got %s", tt.location, got)
			}
		})
	}
}

func TestPagesServeIndex(t *testing.T) {
	server := setupRoutes(t)
	client := noRedirectClient()

	for _, path := range []string{"/register", "/group/default", "/group/la-compagnia"} {
		t.Run(path, func(t *testing.T) {
			resp, err := client.Get(server.URL + path)
			if err != nil {
				t.Fatalf("GET %s failed: %v", path, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("Expected 200, got %d", resp.StatusCode)
			}
			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), "quando") {
				t.Errorf("Expected index.html, got %q", body)
			}
		})
	}
}

func TestStaticAssets(t *testing.T) {
	server := setupRoutes(t)

	resp, err := http.Get(server.URL + "/static/app.js")
	if err != nil {
		t.Fatalf("GET asset failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "console.log('ok')" {
		t.Errorf("Unexpected asset body %q", body)
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORSMiddleware(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodOptions, "/quando.v1.GroupService/CreateGroup", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS origin header")
	}
}
