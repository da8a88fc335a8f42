package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"empleo-search/internal/domain/entity"
	"empleo-search/internal/pkg/searchutil"
	"empleo-search/internal/repository"
)

type CandidateRepo struct {
	db Querier
}

func NewCandidateRepo(db Querier) repository.CandidateRepository {
	return &CandidateRepo{db: db}
}

func (repo *CandidateRepo) SearchYouth(ctx context.Context, query string, filters repository.SearchFilters, limit, offset int) ([]*entity.CandidateProfile, error) {
	cs := &conditionSet{}
	cs.addRaw("role = 'YOUTH'")

	pattern := searchutil.ContainsPattern(query)
	cs.add("(first_name ILIKE $%[1]d OR last_name ILIKE $%[1]d OR job_title ILIKE $%[1]d OR professional_summary ILIKE $%[1]d)", pattern)

	if filters.Location != nil {
		cs.add("city ILIKE $%d", searchutil.ContainsPattern(*filters.Location))
	}
	if len(filters.Skills) > 0 {
		// any-of: the profile matches when it shares at least one skill
		cs.add("relevant_skills && $%d", pq.Array(filters.Skills))
	}

	stmt := fmt.Sprintf(`
SELECT user_id, first_name, last_name, job_title, professional_summary,
       relevant_skills, city, role, created_at
FROM candidate_profiles
%s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d`, cs.clause(), cs.next(), cs.next()+1)

	args := append(cs.args, limit, offset)
	rows, err := repo.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("SearchYouth: %w", err)
	}
	defer func() { _ = rows.Close() }()

	profiles := make([]*entity.CandidateProfile, 0, limit)
	for rows.Next() {
		var profile entity.CandidateProfile
		var jobTitle, summary sql.NullString
		var skills pq.StringArray
		if err := rows.Scan(&profile.UserID, &profile.FirstName, &profile.LastName,
			&jobTitle, &summary, &skills, &profile.City, &profile.Role, &profile.CreatedAt); err != nil {
			return nil, fmt.Errorf("SearchYouth: Scan: %w", err)
		}
		if jobTitle.Valid {
			profile.JobTitle = &jobTitle.String
		}
		if summary.Valid {
			profile.ProfessionalSummary = &summary.String
		}
		profile.RelevantSkills = []string(skills)
		profiles = append(profiles, &profile)
	}
	return profiles, rows.Err()
}

func (repo *CandidateRepo) SkillSetsContaining(ctx context.Context, skill string, limit int) ([][]string, error) {
	// Exact element match, not substring: the suggestion use case filters
	// the returned sets for substring hits in process.
	const stmt = `
SELECT relevant_skills
FROM candidate_profiles
WHERE role = 'YOUTH' AND $1 = ANY(relevant_skills)
LIMIT $2`

	rows, err := repo.db.QueryContext(ctx, stmt, skill, limit)
	if err != nil {
		return nil, fmt.Errorf("SkillSetsContaining: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sets := make([][]string, 0, limit)
	for rows.Next() {
		var skills pq.StringArray
		if err := rows.Scan(&skills); err != nil {
			return nil, fmt.Errorf("SkillSetsContaining: Scan: %w", err)
		}
		sets = append(sets, []string(skills))
	}
	return sets, rows.Err()
}
