// Package http wires middleware and route registration for the review API.
package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"chutti-news/internal/handler/http/pathutil"
	"chutti-news/internal/handler/http/respond"
	"chutti-news/internal/handler/http/responsewriter"
	"chutti-news/internal/observability/logging"
	"chutti-news/internal/observability/metrics"
)

// Logging logs one line per request with method, path, status, size and
// duration. The request ID is attached via the logger in context.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := responsewriter.Wrap(w)

		logger := logging.WithRequestID(r.Context(), slog.Default())
		ctx := logging.WithLogger(r.Context(), logger)
		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.Status()),
			slog.Int("bytes", rec.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// Recover converts panics into 500 responses instead of killing the server.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				respond.Error(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Metrics records request counts and latencies. Paths are normalized so
// article IDs do not explode label cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := responsewriter.Wrap(w)
		next.ServeHTTP(rec, r)

		path := pathutil.NormalizePath(r.URL.Path)
		status := strconv.Itoa(rec.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
	})
}
