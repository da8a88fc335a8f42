package search

import (
	"net/http"

	"empleo-search/internal/handler/http/respond"
	searchUC "empleo-search/internal/usecase/search"
)

type PopularHandler struct{ Svc *searchUC.Service }

// ServeHTTP returns the fixed list of popular searches.
// @Summary      Búsquedas populares
// @Description  Devuelve las búsquedas más frecuentes de la plataforma
// @Tags         search
// @Produce      json
// @Param        limit query int false "Máximo de entradas (por defecto 10)"
// @Success      200 {object} PopularResponse
// @Failure      400 {string} string "Bad request"
// @Router       /search/popular [get]
func (h PopularHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, err := parseBoundedInt(r.URL.Query().Get("limit"), "limit")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusOK, PopularResponse{
		Searches: h.Svc.PopularSearches(limit),
	})
}
