package search

import "strings"

// Relevance scoring weights. The values are part of the ranking contract:
// changing any of them reorders every result page.
const (
	weightTitleExact    = 100
	weightTitleContains = 80
	weightTitleWord     = 20
	weightDescContains  = 30
	weightDescWord      = 10

	maxScore = 100
)

// RelevanceScore rates how well a title and description match a free-text
// query, returning an integer in [0, 100].
//
// The heuristic is additive: an exact title match scores 100 outright, a
// title containing the query as a substring scores 80, each query word
// contained in some title word adds 20, a description containing the query
// adds 30, and each query word contained in some description word adds 10.
// The running total is clamped to 100, never renormalized. Matching is
// case-insensitive throughout.
func RelevanceScore(query, title, description string) int {
	q := strings.ToLower(query)
	t := strings.ToLower(title)
	d := strings.ToLower(description)

	score := 0

	// Exact and substring title bonuses are mutually exclusive.
	switch {
	case t == q:
		score += weightTitleExact
	case strings.Contains(t, q):
		score += weightTitleContains
	}

	queryWords := strings.Fields(q)
	titleWords := strings.Fields(t)
	score += weightTitleWord * countWordMatches(queryWords, titleWords)

	if strings.Contains(d, q) {
		score += weightDescContains
	}

	descWords := strings.Fields(d)
	score += weightDescWord * countWordMatches(queryWords, descWords)

	if score > maxScore {
		score = maxScore
	}
	return score
}

// countWordMatches counts how many query words are contained, as a
// substring, in at least one candidate word.
func countWordMatches(queryWords, candidateWords []string) int {
	matches := 0
	for _, qw := range queryWords {
		for _, cw := range candidateWords {
			if strings.Contains(cw, qw) {
				matches++
				break
			}
		}
	}
	return matches
}
