package article

import (
	"net/http"

	"chutti-news/internal/handler/http/respond"
	"chutti-news/internal/usecase/review"
)

// ListHandler returns every processed article with review counts.
type ListHandler struct {
	service *review.Service
}

func NewListHandler(service *review.Service) *ListHandler {
	return &ListHandler{service: service}
}

func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := ListResponse{
		Articles: make([]ArticleResponse, 0, len(result.Articles)),
		Total:    result.Total,
		Approved: result.Approved,
	}
	for _, a := range result.Articles {
		resp.Articles = append(resp.Articles, toResponse(a))
	}
	respond.JSON(w, http.StatusOK, resp)
}
