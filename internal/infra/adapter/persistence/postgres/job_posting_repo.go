package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"empleo-search/internal/domain/entity"
	"empleo-search/internal/pkg/searchutil"
	"empleo-search/internal/repository"
)

type JobPostingRepo struct {
	db Querier
}

func NewJobPostingRepo(db Querier) repository.JobPostingRepository {
	return &JobPostingRepo{db: db}
}

func (repo *JobPostingRepo) SearchActive(ctx context.Context, query string, filters repository.SearchFilters, limit, offset int) ([]*entity.JobPosting, error) {
	cs := &conditionSet{}
	cs.addRaw("status = 'ACTIVE'")

	pattern := searchutil.ContainsPattern(query)
	cs.add("(title ILIKE $%[1]d OR description ILIKE $%[1]d OR requirements ILIKE $%[1]d OR organization_name ILIKE $%[1]d)", pattern)

	if filters.Location != nil {
		cs.add("location ILIKE $%d", searchutil.ContainsPattern(*filters.Location))
	}
	if filters.DateFrom != nil {
		cs.add("created_at >= $%d", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		cs.add("created_at <= $%d", *filters.DateTo)
	}
	if filters.SalaryMin != nil {
		cs.add("salary_min >= $%d", *filters.SalaryMin)
	}
	if filters.SalaryMax != nil {
		cs.add("salary_max <= $%d", *filters.SalaryMax)
	}

	stmt := fmt.Sprintf(`
SELECT id, title, description, requirements, organization_name, location,
       salary_min, salary_max, contract_type, work_modality, status, created_at
FROM job_postings
%s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d`, cs.clause(), cs.next(), cs.next()+1)

	args := append(cs.args, limit, offset)
	rows, err := repo.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("SearchActive: %w", err)
	}
	defer func() { _ = rows.Close() }()

	jobs := make([]*entity.JobPosting, 0, limit)
	for rows.Next() {
		var job entity.JobPosting
		var salaryMin, salaryMax sql.NullFloat64
		if err := rows.Scan(&job.ID, &job.Title, &job.Description, &job.Requirements,
			&job.OrganizationName, &job.Location, &salaryMin, &salaryMax,
			&job.ContractType, &job.WorkModality, &job.Status, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("SearchActive: Scan: %w", err)
		}
		if salaryMin.Valid {
			job.SalaryMin = &salaryMin.Float64
		}
		if salaryMax.Valid {
			job.SalaryMax = &salaryMax.Float64
		}
		jobs = append(jobs, &job)
	}
	return jobs, rows.Err()
}

func (repo *JobPostingRepo) SuggestTitles(ctx context.Context, query string, limit int) ([]string, error) {
	const stmt = `
SELECT title
FROM job_postings
WHERE status = 'ACTIVE' AND title ILIKE $1
LIMIT $2`

	rows, err := repo.db.QueryContext(ctx, stmt, searchutil.ContainsPattern(query), limit)
	if err != nil {
		return nil, fmt.Errorf("SuggestTitles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	titles := make([]string, 0, limit)
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("SuggestTitles: Scan: %w", err)
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}
