package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"cfb-scout-service/internal/logging"
	"cfb-scout-service/internal/metrics"
)

// LoggingMiddleware attaches a request-scoped logger to the context and
// records request metrics. It expects chi's RequestID middleware to run
// first.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder) func(nethttp.Handler) nethttp.Handler {
	return func(next nethttp.Handler) nethttp.Handler {
		return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			logger := baseLogger
			if logger == nil {
				logger = slog.Default()
			}

			start := time.Now()
			reqID := chimiddleware.GetReqID(r.Context())
			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			logger = logger.With(
				slog.String(logging.FieldRequestID, reqID),
				slog.String(logging.FieldMethod, r.Method),
				slog.String(logging.FieldPath, r.URL.Path),
			)

			ctx := logging.WithLogger(r.Context(), logger)
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(ctx))

			duration := time.Since(start)
			recorder.RecordHTTPRequest(r.Method, routePattern(r), ww.Status(), duration)

			logger.Info("request complete",
				slog.Int(logging.FieldStatusCode, ww.Status()),
				slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			)
		})
	}
}

// routePattern returns the matched chi pattern ("/teams/{name}") so metrics
// stay low-cardinality; falls back to the raw path before routing resolved.
func routePattern(r *nethttp.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
