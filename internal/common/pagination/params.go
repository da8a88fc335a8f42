package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
// The search ranking is paginated globally, so the pair addresses a window
// of the merged result list rather than a page of any one collection.
type Params struct {
	Limit  int // Items per page
	Offset int // 0-based position in the merged ranking
}

// ParseQueryParams parses pagination parameters from HTTP request query
// string. Returns Params with defaults if parameters are missing.
//
// Query parameters:
//   - limit: Items per page (must be between 1 and config.MaxLimit)
//   - offset: Position in the result list (must be a non-negative integer)
//
// Returns an error if parameters are invalid.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Limit:  config.DefaultLimit,
		Offset: 0,
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
		}
		params.Limit = limit
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return params, fmt.Errorf("invalid query parameter: offset must be a non-negative integer")
		}
		params.Offset = offset
	}

	return params, nil
}
