package search

import (
	"errors"
	"net/http"
	"strings"

	"empleo-search/internal/handler/http/respond"
	searchUC "empleo-search/internal/usecase/search"
)

type SuggestionsHandler struct{ Svc *searchUC.Service }

// ServeHTTP handles autocomplete suggestions.
// @Summary      Sugerencias de búsqueda
// @Description  Devuelve sugerencias para autocompletar a partir de un texto parcial
// @Tags         search
// @Produce      json
// @Param        q query string true "Texto parcial"
// @Param        limit query int false "Máximo de sugerencias (por defecto 5)"
// @Success      200 {object} SuggestionsResponse
// @Failure      400 {string} string "Bad request"
// @Failure      500 {string} string "Server error"
// @Router       /search/suggestions [get]
func (h SuggestionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("q query param required"))
		return
	}

	limit, err := parseBoundedInt(r.URL.Query().Get("limit"), "limit")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	suggestions, err := h.Svc.Suggestions(r.Context(), q, limit)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	respond.JSON(w, http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}
