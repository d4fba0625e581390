// Package respond centralizes JSON response writing for HTTP handlers.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// Error writes a JSON error body with the given status code.
func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, map[string]string{"error": message})
}

// safeErrorSubstrings lists fragments of error messages that are safe to
// expose to clients. Anything else is replaced with a generic message so
// internal details (file paths, provider responses) never leak.
var safeErrorSubstrings = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"must be",
	"cannot be",
	"too long",
	"too short",
}

// SafeError writes an error response, exposing err's message only when it
// matches a known-safe pattern. Exposed messages still pass through
// SanitizeError. Server errors are always masked.
func SafeError(w http.ResponseWriter, code int, err error) {
	message := "request failed"
	if code >= http.StatusInternalServerError {
		message = "internal server error"
	} else if err != nil {
		lower := strings.ToLower(err.Error())
		for _, s := range safeErrorSubstrings {
			if strings.Contains(lower, s) {
				message = SanitizeError(err.Error())
				break
			}
		}
	}
	Error(w, code, message)
}
