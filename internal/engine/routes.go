package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/atlanticdynamic/hytopia-dev/internal/catalog"
	"github.com/atlanticdynamic/hytopia-dev/internal/server/middleware"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

const (
	HealthPath = "/_dev/health"
	StatusPath = "/_dev/status"
)

// Status is the body of GET /_dev/status.
type Status struct {
	ID          string     `json:"id"`
	Port        int        `json:"port"`
	Development bool       `json:"development"`
	State       string     `json:"state"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	Games       []string   `json:"games"`
	Examples    []string   `json:"examples"`
}

// Bundle is one entry of the index served at /.
type Bundle struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Index is the body of GET /.
type Index struct {
	Games    []Bundle `json:"games"`
	Examples []Bundle `json:"examples"`
}

// GamePath is where a game is mounted.
func GamePath(name string) string {
	return "/" + name + "/"
}

// ExamplePath is where an example is mounted.
func ExamplePath(name string) string {
	return "/" + catalog.ExamplesPrefix + "/" + name + "/"
}

// buildRoutes assembles the route table. Every route gets the request logger;
// development mode adds the dev headers and the status endpoint.
func (e *DevEngine) buildRoutes() ([]httpserver.Route, error) {
	mw := []httpserver.HandlerFunc{middleware.RequestLogger(e.logger.WithGroup("http"))}
	if e.cfg.Development {
		mw = append(mw, middleware.DevHeaders(e.cfg.Headers))
	}

	var routes []httpserver.Route
	add := func(id, path string, h http.HandlerFunc) error {
		r, err := httpserver.NewRouteFromHandlerFunc(id, path, h, mw...)
		if err != nil {
			return fmt.Errorf("failed to create route %s: %w", id, err)
		}
		routes = append(routes, *r)
		return nil
	}

	if err := add("health", HealthPath, e.handleHealth); err != nil {
		return nil, err
	}
	if e.cfg.Development {
		if err := add("status", StatusPath, e.handleStatus); err != nil {
			return nil, err
		}
	}

	for _, g := range e.cfg.Catalog.Games {
		e.warnMissingDir(catalog.KindGame, g)
		if err := add("game-"+g.Name, GamePath(g.Name), bundleHandler(g.Dir, "/"+g.Name)); err != nil {
			return nil, err
		}
	}
	for _, ex := range e.cfg.Catalog.Examples {
		e.warnMissingDir(catalog.KindExample, ex)
		prefix := "/" + catalog.ExamplesPrefix + "/" + ex.Name
		if err := add("example-"+ex.Name, ExamplePath(ex.Name), bundleHandler(ex.Dir, prefix)); err != nil {
			return nil, err
		}
	}

	if err := add("index", "/", e.handleIndex); err != nil {
		return nil, err
	}
	return routes, nil
}

func (e *DevEngine) warnMissingDir(kind catalog.Kind, entry catalog.Entry) {
	info, err := os.Stat(entry.Dir)
	switch {
	case err != nil:
		e.logger.Warn("Bundle directory not found, requests will 404 until it exists",
			"kind", kind, "name", entry.Name, "dir", entry.Dir)
	case !info.IsDir():
		e.logger.Warn("Bundle path is not a directory", "kind", kind, "name", entry.Name, "dir", entry.Dir)
	}
}

// bundleHandler serves files from dir with the mount prefix stripped.
func bundleHandler(dir, prefix string) http.HandlerFunc {
	fs := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	return fs.ServeHTTP
}

func (e *DevEngine) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func (e *DevEngine) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, e.Status())
}

func (e *DevEngine) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found", "path": r.URL.Path})
		return
	}

	idx := Index{
		Games:    make([]Bundle, 0, len(e.cfg.Catalog.Games)),
		Examples: make([]Bundle, 0, len(e.cfg.Catalog.Examples)),
	}
	for _, g := range e.cfg.Catalog.Games {
		idx.Games = append(idx.Games, Bundle{Name: g.Name, Path: GamePath(g.Name)})
	}
	for _, ex := range e.cfg.Catalog.Examples {
		idx.Examples = append(idx.Examples, Bundle{Name: ex.Name, Path: ExamplePath(ex.Name)})
	}
	writeJSON(w, http.StatusOK, idx)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
