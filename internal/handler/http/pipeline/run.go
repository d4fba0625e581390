// Package pipeline exposes manual pipeline runs over HTTP.
package pipeline

import (
	"net/http"

	"chutti-news/internal/handler/http/respond"
	pipelineUC "chutti-news/internal/usecase/pipeline"
)

// RunHandler triggers a full fetch-classify-translate run. Runs are
// synchronous so the response carries the run's stats.
type RunHandler struct {
	service *pipelineUC.Service
}

func NewRunHandler(service *pipelineUC.Service) *RunHandler {
	return &RunHandler{service: service}
}

func (h *RunHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Run(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, stats)
}

// Register mounts the pipeline routes on mux.
func Register(mux *http.ServeMux, service *pipelineUC.Service) {
	mux.Handle("POST /pipeline/run", NewRunHandler(service))
}
