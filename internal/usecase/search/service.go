// Package search implements the cross-entity relevance search: a fan-out
// over the five searchable collections (job postings, organizations,
// candidate profiles, courses, institutions) whose partial results are
// scored, merged and paginated into one ranked list.
package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"empleo-search/internal/observability/tracing"
	"empleo-search/internal/pkg/searchutil"
	"empleo-search/internal/repository"
)

// Defaults applied when the caller passes a non-positive limit.
const (
	DefaultLimit           = 20
	DefaultSuggestionLimit = 5
	DefaultPopularLimit    = 10
)

// popularSearches is the fixed list served by PopularSearches, most
// requested first. Product-owned; order matters.
var popularSearches = []string{
	"desarrollador web",
	"marketing digital",
	"atención al cliente",
	"diseño gráfico",
	"ventas",
	"contabilidad",
	"programación",
	"recursos humanos",
	"inglés",
	"excel avanzado",
}

// Service provides the global search use cases over the entity
// repositories. It holds no state of its own; every call is a pure query.
type Service struct {
	Jobs          repository.JobPostingRepository
	Organizations repository.OrganizationRepository
	Candidates    repository.CandidateRepository
	Courses       repository.CourseRepository
	Institutions  repository.InstitutionRepository
}

// GlobalSearch queries every requested entity type, scores each match and
// returns one page of results sorted by score descending.
//
// Pagination is global: each lookup fetches the first offset+limit
// candidates of its type and offset/limit are applied once to the merged,
// sorted list. The fan-out is concurrent and fail-fast: the first lookup
// error cancels the remaining lookups and fails the whole call.
func (s *Service) GlobalSearch(ctx context.Context, query string, filters repository.SearchFilters, limit, offset int) ([]Result, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	ctx, cancel := context.WithTimeout(ctx, searchutil.DefaultSearchTimeout)
	defer cancel()

	ctx, span := tracing.GetTracer().Start(ctx, "search.global")
	defer span.End()

	start := time.Now()
	types := resolveTypes(filters.Types)
	fetchLimit := offset + limit

	partials := make([][]Result, len(types))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, entityType := range types {
		i, entityType := i, entityType
		eg.Go(func() error {
			lookupStart := time.Now()
			results, err := s.lookup(egCtx, entityType, query, filters, fetchLimit)
			recordLookup(entityType, time.Since(lookupStart))
			if err != nil {
				return fmt.Errorf("search %s: %w", entityType, err)
			}
			partials[i] = results
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		recordSearch("error", time.Since(start), 0)
		return nil, err
	}

	total := 0
	for _, partial := range partials {
		total += len(partial)
	}
	merged := make([]Result, 0, total)
	for _, partial := range partials {
		merged = append(merged, partial...)
	}

	// Stable keeps fan-out order among equal scores, so ties are
	// deterministic across requests.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	if offset >= len(merged) {
		merged = merged[:0]
	} else {
		merged = merged[offset:]
	}
	if len(merged) > limit {
		merged = merged[:limit]
	}

	recordSearch("success", time.Since(start), len(merged))
	return merged, nil
}

// lookup runs the adapter for one entity type and maps its rows into
// scored result envelopes.
func (s *Service) lookup(ctx context.Context, entityType Type, query string, filters repository.SearchFilters, limit int) ([]Result, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "search."+string(entityType))
	defer span.End()

	switch entityType {
	case TypeJob:
		jobs, err := s.Jobs.SearchActive(ctx, query, filters, limit, 0)
		if err != nil {
			return nil, err
		}
		results := make([]Result, 0, len(jobs))
		for _, job := range jobs {
			results = append(results, jobResult(query, job))
		}
		return results, nil

	case TypeOrganization:
		orgs, err := s.Organizations.Search(ctx, query, filters, limit, 0)
		if err != nil {
			return nil, err
		}
		results := make([]Result, 0, len(orgs))
		for _, org := range orgs {
			results = append(results, organizationResult(query, org))
		}
		return results, nil

	case TypeCandidate:
		profiles, err := s.Candidates.SearchYouth(ctx, query, filters, limit, 0)
		if err != nil {
			return nil, err
		}
		results := make([]Result, 0, len(profiles))
		for _, profile := range profiles {
			results = append(results, candidateResult(query, profile))
		}
		return results, nil

	case TypeCourse:
		courses, err := s.Courses.SearchActive(ctx, query, filters, limit, 0)
		if err != nil {
			return nil, err
		}
		results := make([]Result, 0, len(courses))
		for _, course := range courses {
			results = append(results, courseResult(query, course))
		}
		return results, nil

	case TypeInstitution:
		institutions, err := s.Institutions.SearchActive(ctx, query, filters, limit, 0)
		if err != nil {
			return nil, err
		}
		results := make([]Result, 0, len(institutions))
		for _, inst := range institutions {
			results = append(results, institutionResult(query, inst))
		}
		return results, nil
	}
	return nil, fmt.Errorf("unknown entity type %q", entityType)
}

// resolveTypes maps the requested type tags onto the fan-out set. An empty
// request means every type. Unknown tags are dropped, so a request naming
// only unknown tags selects no types and the search matches nothing.
func resolveTypes(requested []string) []Type {
	if len(requested) == 0 {
		return AllTypes()
	}
	wanted := make(map[Type]bool, len(requested))
	for _, tag := range requested {
		wanted[Type(strings.ToLower(strings.TrimSpace(tag)))] = true
	}
	types := make([]Type, 0, len(wanted))
	for _, entityType := range AllTypes() {
		if wanted[entityType] {
			types = append(types, entityType)
		}
	}
	return types
}

// Suggestions returns up to limit distinct suggestion strings for a partial
// query, drawn from active job titles, organization names and candidate
// skills, in that order. A blank query yields no suggestions.
func (s *Service) Suggestions(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	if strings.TrimSpace(query) == "" {
		return []string{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, searchutil.DefaultSearchTimeout)
	defer cancel()

	seen := make(map[string]bool)
	suggestions := make([]string, 0, limit)
	add := func(suggestion string) {
		if seen[suggestion] {
			return
		}
		seen[suggestion] = true
		suggestions = append(suggestions, suggestion)
	}

	titles, err := s.Jobs.SuggestTitles(ctx, query, limit)
	if err != nil {
		recordSuggestions("error")
		return nil, fmt.Errorf("suggest job titles: %w", err)
	}
	for _, title := range titles {
		add(title)
	}

	names, err := s.Organizations.SuggestNames(ctx, query, limit)
	if err != nil {
		recordSuggestions("error")
		return nil, fmt.Errorf("suggest organization names: %w", err)
	}
	for _, name := range names {
		add(name)
	}

	// The store only matches whole skill elements; over-fetch and filter
	// for substring hits here.
	skillSets, err := s.Candidates.SkillSetsContaining(ctx, query, limit*2)
	if err != nil {
		recordSuggestions("error")
		return nil, fmt.Errorf("suggest candidate skills: %w", err)
	}
	lowerQuery := strings.ToLower(query)
	for _, skills := range skillSets {
		for _, skill := range skills {
			if strings.Contains(strings.ToLower(skill), lowerQuery) {
				add(skill)
			}
		}
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	recordSuggestions("success")
	return suggestions, nil
}

// PopularSearches returns the first limit entries of the fixed popular
// query list, in its original order.
func (s *Service) PopularSearches(limit int) []string {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	if limit > len(popularSearches) {
		limit = len(popularSearches)
	}
	out := make([]string, limit)
	copy(out, popularSearches[:limit])
	return out
}
