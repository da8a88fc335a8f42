package search

import searchUC "empleo-search/internal/usecase/search"

// SearchResponse is the envelope for GET /search.
type SearchResponse struct {
	Results       []searchUC.Result `json:"results"`
	TotalReturned int               `json:"total_returned"`
	Limit         int               `json:"limit"`
	Offset        int               `json:"offset"`
}

// SuggestionsResponse is the envelope for GET /search/suggestions.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// PopularResponse is the envelope for GET /search/popular.
type PopularResponse struct {
	Searches []string `json:"searches"`
}
