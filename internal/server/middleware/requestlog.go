// Package middleware holds the go-supervisor middlewares mounted on every dev
// engine route.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// quietPrefixes are logged at debug level since tooling polls them.
var quietPrefixes = []string{"/_dev/health"}

// RequestLogger logs one record per request after the handler ran.
// Level follows the status: 5xx error, 4xx warn, health polls debug.
func RequestLogger(logger *slog.Logger) httpserver.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()
		start := time.Now()

		rp.Next()

		rw := rp.Writer()
		status := rw.Status()
		if status == 0 {
			status = http.StatusOK
		}

		logger.LogAttrs(r.Context(), levelFor(r.URL.Path, status), "HTTP request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int("size", rw.Size()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}

func levelFor(path string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	}
	for _, p := range quietPrefixes {
		if strings.HasPrefix(path, p) {
			return slog.LevelDebug
		}
	}
	return slog.LevelInfo
}
