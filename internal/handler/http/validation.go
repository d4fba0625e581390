package http

import "net/http"

const (
	maxPathLength = 2048
	maxBodySize   = 1 << 20
)

// InputLimits rejects oversized paths and caps request bodies before any
// handler reads them. Review edits are the largest expected payload and
// stay well under the 1MiB body cap.
func InputLimits(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.Path) > maxPathLength {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusRequestURITooLong)
			_, _ = w.Write([]byte(`{"error":"URI too long"}`))
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		next.ServeHTTP(w, r)
	})
}
