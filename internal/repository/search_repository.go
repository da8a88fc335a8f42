// Package repository defines the data-access interfaces used by the search
// use cases. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"
	"time"

	"empleo-search/internal/domain/entity"
)

// SearchFilters contains the optional filters accepted by the global search.
// Every field is optional; a nil or empty value means no constraint.
//
// Not every entity type honors every filter. Location applies to jobs,
// organizations and candidates. Category applies to the organization business
// sector only (course category and institution type are enumerations in the
// store and are intentionally not matched against this free-text field).
// Date range and salary apply to job postings only. Skills apply to candidate
// skills and course tags with any-of semantics. Experience is accepted for
// API compatibility but applied by no adapter.
type SearchFilters struct {
	Types      []string
	Location   *string
	Category   *string
	DateFrom   *time.Time
	DateTo     *time.Time
	Skills     []string
	Experience *string
	SalaryMin  *float64
	SalaryMax  *float64
}

// JobPostingRepository provides read access to job postings for search.
type JobPostingRepository interface {
	// SearchActive returns ACTIVE job postings whose title, description,
	// requirements or organization name contains the query, case-insensitive.
	// An empty query matches every active posting.
	SearchActive(ctx context.Context, query string, filters SearchFilters, limit, offset int) ([]*entity.JobPosting, error)
	// SuggestTitles returns titles of active postings containing the query.
	SuggestTitles(ctx context.Context, query string, limit int) ([]string, error)
}

// OrganizationRepository provides read access to organizations for search.
type OrganizationRepository interface {
	// Search returns organizations whose name, description or business
	// sector contains the query, case-insensitive.
	Search(ctx context.Context, query string, filters SearchFilters, limit, offset int) ([]*entity.Organization, error)
	// SuggestNames returns organization names containing the query.
	SuggestNames(ctx context.Context, query string, limit int) ([]string, error)
}

// CandidateRepository provides read access to candidate profiles for search.
type CandidateRepository interface {
	// SearchYouth returns YOUTH-role profiles whose name, job title or
	// professional summary contains the query, case-insensitive.
	SearchYouth(ctx context.Context, query string, filters SearchFilters, limit, offset int) ([]*entity.CandidateProfile, error)
	// SkillSetsContaining returns the skill sets of YOUTH profiles whose
	// relevant skills contain the given skill as an exact element.
	SkillSetsContaining(ctx context.Context, skill string, limit int) ([][]string, error)
}

// CourseRepository provides read access to courses for search.
type CourseRepository interface {
	// SearchActive returns active courses whose title, description or
	// institution name contains the query, case-insensitive.
	SearchActive(ctx context.Context, query string, filters SearchFilters, limit, offset int) ([]*entity.Course, error)
}

// InstitutionRepository provides read access to institutions for search.
type InstitutionRepository interface {
	// SearchActive returns active institutions whose name or department
	// contains the query, case-insensitive.
	SearchActive(ctx context.Context, query string, filters SearchFilters, limit, offset int) ([]*entity.Institution, error)
}
