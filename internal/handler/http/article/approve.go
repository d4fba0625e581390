package article

import (
	"net/http"

	"chutti-news/internal/handler/http/pathutil"
	"chutti-news/internal/handler/http/respond"
	"chutti-news/internal/usecase/review"
)

// ApproveHandler marks an article as approved for the podcast.
type ApproveHandler struct {
	service *review.Service
}

func NewApproveHandler(service *review.Service) *ApproveHandler {
	return &ApproveHandler{service: service}
}

func (h *ApproveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ArticleID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.service.Approve(r.Context(), id); err != nil {
		writeReviewError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, StatusResponse{ID: id, Approved: true})
}
