package httpserver

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/paramguard/pkg/logger"
	"github.com/dmitrymomot/paramguard/pkg/xmlout"
)

// Check is a named readiness probe.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Health returns a probe handler. Without checks it reports liveness.
// With checks every check runs; any failure responds 503.
func Health(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		status, code := "alive", http.StatusOK
		if len(checks) > 0 {
			status = "ready"
		}

		results := make([]string, len(checks))
		for i, c := range checks {
			results[i] = "ok"
			if err := c.Fn(ctx); err != nil {
				log.ErrorContext(ctx, "health check failed",
					logger.Component("health"),
					slog.String("check", c.Name),
					logger.Error(err),
				)
				results[i] = "failed"
				status, code = "not-ready", http.StatusServiceUnavailable
			}
		}

		var body bytes.Buffer
		out := xmlout.New(&body)
		out.OpenElement("health")
		out.Attribute("status", status)
		for i, c := range checks {
			out.OpenElement("check")
			out.Attribute("name", c.Name)
			out.Attribute("status", results[i])
			out.CloseElement()
		}
		if err := out.Close(); err != nil {
			log.ErrorContext(ctx, "failed to render health", logger.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(code)
		w.Write(body.Bytes())
	}
}
