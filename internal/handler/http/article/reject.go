package article

import (
	"net/http"

	"chutti-news/internal/handler/http/pathutil"
	"chutti-news/internal/handler/http/respond"
	"chutti-news/internal/usecase/review"
)

// RejectHandler clears an article's approval.
type RejectHandler struct {
	service *review.Service
}

func NewRejectHandler(service *review.Service) *RejectHandler {
	return &RejectHandler{service: service}
}

func (h *RejectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ArticleID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.service.Reject(r.Context(), id); err != nil {
		writeReviewError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, StatusResponse{ID: id, Approved: false})
}
