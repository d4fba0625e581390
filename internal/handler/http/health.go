package http

import (
	"net/http"
	"os"
	"path/filepath"

	"chutti-news/internal/handler/http/respond"
)

// HealthHandler reports service liveness and whether the data directory
// is writable, since every pipeline run and review action persists there.
type HealthHandler struct {
	dataDir string
}

func NewHealthHandler(dataDir string) *HealthHandler {
	return &HealthHandler{dataDir: dataDir}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := h.checkDataDir(); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	respond.JSON(w, code, map[string]string{"status": status})
}

func (h *HealthHandler) checkDataDir() error {
	if err := os.MkdirAll(h.dataDir, 0o755); err != nil {
		return err
	}
	probe := filepath.Join(h.dataDir, ".health")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}
