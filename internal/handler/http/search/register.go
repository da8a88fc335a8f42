package search

import (
	"net/http"

	"empleo-search/internal/common/pagination"
	httph "empleo-search/internal/handler/http"
	searchUC "empleo-search/internal/usecase/search"
)

// Register mounts the search routes. All three endpoints share the
// rate limiter: the fan-out search is the most expensive read path the
// service exposes.
func Register(mux *http.ServeMux, svc *searchUC.Service, limiter *httph.RateLimiter) {
	mux.Handle("GET /search", limiter.Limit(Handler{Svc: svc, Pagination: pagination.LoadFromEnv()}))
	mux.Handle("GET /search/suggestions", limiter.Limit(SuggestionsHandler{svc}))
	mux.Handle("GET /search/popular", limiter.Limit(PopularHandler{svc}))
}
