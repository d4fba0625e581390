// Package observability centralizes logging and metrics for the service.
//
// Subpackages:
//   - logging: structured logging with slog and request-ID propagation
//   - metrics: Prometheus registry for HTTP, pipeline, review and podcast
//     metrics, exposed via /metrics
package observability
