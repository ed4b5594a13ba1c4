package middleware

import (
	"net/http"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	supervisorHeaders "github.com/robbyt/go-supervisor/runnables/httpserver/middleware/headers"
)

// DevResponseHeaders are set on every response while in development mode.
// Browsers load game bundles from other local origins, so CORS is wide open
// and nothing is cached.
var DevResponseHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, Authorization",
	"Cache-Control":                "no-store",
}

// DevHeaders returns a middleware setting DevResponseHeaders plus extra.
// Extra headers override the defaults with the same name. Header names and
// values are expected to be validated by the config package.
func DevHeaders(extra map[string]string) httpserver.HandlerFunc {
	h := make(http.Header, len(DevResponseHeaders)+len(extra))
	for k, v := range DevResponseHeaders {
		h.Set(k, v)
	}
	for k, v := range extra {
		h.Set(k, v)
	}

	return supervisorHeaders.NewWithOperations(
		supervisorHeaders.WithRemove("Server", "X-Powered-By"),
		supervisorHeaders.WithSet(h),
	)
}
