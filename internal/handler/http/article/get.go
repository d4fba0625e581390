package article

import (
	"errors"
	"net/http"

	"chutti-news/internal/handler/http/pathutil"
	"chutti-news/internal/handler/http/respond"
	"chutti-news/internal/usecase/review"
)

// GetHandler returns a single article by ID.
type GetHandler struct {
	service *review.Service
}

func NewGetHandler(service *review.Service) *GetHandler {
	return &GetHandler{service: service}
}

func (h *GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ArticleID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	a, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeReviewError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toResponse(a))
}

// writeReviewError maps review service errors to HTTP status codes.
func writeReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, review.ErrInvalidArticleID):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, review.ErrArticleNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
