// Package search exposes the global search endpoints.
package search

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"empleo-search/internal/common/pagination"
	"empleo-search/internal/handler/http/respond"
	"empleo-search/internal/repository"
	searchUC "empleo-search/internal/usecase/search"
)

type Handler struct {
	Svc        *searchUC.Service
	Pagination pagination.Config
}

// ServeHTTP handles the global search request.
// @Summary      Búsqueda global
// @Description  Busca empleos, empresas, perfiles, cursos e instituciones por relevancia
// @Tags         search
// @Produce      json
// @Param        q query string false "Texto de búsqueda"
// @Param        types query string false "Tipos de entidad, separados por coma (job,organization,candidate,course,institution)"
// @Param        location query string false "Filtro de ubicación"
// @Param        category query string false "Filtro de categoría / sector"
// @Param        skills query string false "Habilidades, separadas por coma (coincide con al menos una)"
// @Param        experience query string false "Nivel de experiencia"
// @Param        date_from query string false "Fecha mínima de publicación (ISO 8601)"
// @Param        date_to query string false "Fecha máxima de publicación (ISO 8601)"
// @Param        salary_min query number false "Salario mínimo"
// @Param        salary_max query number false "Salario máximo"
// @Param        limit query int false "Resultados por página (por defecto 20, máximo 100)"
// @Param        offset query int false "Desplazamiento global"
// @Success      200 {object} SearchResponse
// @Failure      400 {string} string "Bad request"
// @Failure      500 {string} string "Server error"
// @Router       /search [get]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	filters, err := parseFilters(r.URL.Query())
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	page, err := pagination.ParseQueryParams(r, h.Pagination)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	results, err := h.Svc.GlobalSearch(r.Context(), q, filters, page.Limit, page.Offset)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, SearchResponse{
		Results:       results,
		TotalReturned: len(results),
		Limit:         page.Limit,
		Offset:        page.Offset,
	})
}

func parseFilters(values url.Values) (repository.SearchFilters, error) {
	var filters repository.SearchFilters

	if types := values.Get("types"); types != "" {
		filters.Types = splitCSV(types)
	}
	if skills := values.Get("skills"); skills != "" {
		filters.Skills = splitCSV(skills)
	}
	if location := strings.TrimSpace(values.Get("location")); location != "" {
		filters.Location = &location
	}
	if category := strings.TrimSpace(values.Get("category")); category != "" {
		filters.Category = &category
	}
	if experience := strings.TrimSpace(values.Get("experience")); experience != "" {
		filters.Experience = &experience
	}

	if raw := values.Get("date_from"); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			return filters, fmt.Errorf("invalid date_from: %w", err)
		}
		filters.DateFrom = &from
	}
	if raw := values.Get("date_to"); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			return filters, fmt.Errorf("invalid date_to: %w", err)
		}
		filters.DateTo = &to
	}
	if filters.DateFrom != nil && filters.DateTo != nil && filters.DateFrom.After(*filters.DateTo) {
		return filters, errors.New("invalid date range: date_from must be before or equal to date_to")
	}

	if raw := values.Get("salary_min"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, errors.New("invalid salary_min: must be a number")
		}
		filters.SalaryMin = &min
	}
	if raw := values.Get("salary_max"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, errors.New("invalid salary_max: must be a number")
		}
		filters.SalaryMax = &max
	}

	return filters, nil
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.New("must be ISO 8601")
	}
	return t, nil
}

// parseBoundedInt parses an optional non-negative integer parameter.
// Empty means unset (0, the usecase applies its default).
func parseBoundedInt(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s: must be a non-negative integer", name)
	}
	return n, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
