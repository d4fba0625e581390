package article

import (
	"net/http"

	"chutti-news/internal/usecase/review"
)

// Register mounts the article review routes on mux.
func Register(mux *http.ServeMux, service *review.Service) {
	mux.Handle("GET /articles", NewListHandler(service))
	mux.Handle("GET /articles/{id}", NewGetHandler(service))
	mux.Handle("PUT /articles/{id}", NewUpdateHandler(service))
	mux.Handle("POST /articles/{id}/approve", NewApproveHandler(service))
	mux.Handle("POST /articles/{id}/reject", NewRejectHandler(service))
}
