package article

import (
	"encoding/json"
	"net/http"
	"strings"

	"chutti-news/internal/handler/http/pathutil"
	"chutti-news/internal/handler/http/respond"
	"chutti-news/internal/usecase/review"
)

const maxUpdateBodySize = 64 * 1024

// UpdateHandler applies operator edits to an article's Tamil text.
type UpdateHandler struct {
	service *review.Service
}

func NewUpdateHandler(service *review.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

func (h *UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ArticleID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req UpdateRequest
	body := http.MaxBytesReader(w, r.Body, maxUpdateBodySize)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "request body is invalid")
		return
	}
	if strings.TrimSpace(req.TamilTitle) == "" {
		respond.Error(w, http.StatusBadRequest, "tamil_title is required")
		return
	}

	err = h.service.Edit(r.Context(), review.EditInput{
		ID:      id,
		Title:   req.TamilTitle,
		Summary: req.TamilSummary,
	})
	if err != nil {
		writeReviewError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
