package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"empleo-search/internal/domain/entity"
	"empleo-search/internal/pkg/searchutil"
	"empleo-search/internal/repository"
)

type CourseRepo struct {
	db Querier
}

func NewCourseRepo(db Querier) repository.CourseRepository {
	return &CourseRepo{db: db}
}

// SearchActive intentionally ignores filters.Category: course categories are
// an enumeration in the store and the free-text category filter does not
// apply to them.
func (repo *CourseRepo) SearchActive(ctx context.Context, query string, filters repository.SearchFilters, limit, offset int) ([]*entity.Course, error) {
	cs := &conditionSet{}
	cs.addRaw("is_active = TRUE")

	pattern := searchutil.ContainsPattern(query)
	cs.add("(title ILIKE $%[1]d OR description ILIKE $%[1]d OR institution_name ILIKE $%[1]d)", pattern)

	if len(filters.Skills) > 0 {
		cs.add("tags && $%d", pq.Array(filters.Skills))
	}

	stmt := fmt.Sprintf(`
SELECT id, title, description, institution_name, category, duration, level,
       tags, is_active, created_at
FROM courses
%s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d`, cs.clause(), cs.next(), cs.next()+1)

	args := append(cs.args, limit, offset)
	rows, err := repo.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("SearchActive: %w", err)
	}
	defer func() { _ = rows.Close() }()

	courses := make([]*entity.Course, 0, limit)
	for rows.Next() {
		var course entity.Course
		var tags pq.StringArray
		if err := rows.Scan(&course.ID, &course.Title, &course.Description,
			&course.InstitutionName, &course.Category, &course.Duration,
			&course.Level, &tags, &course.IsActive, &course.CreatedAt); err != nil {
			return nil, fmt.Errorf("SearchActive: Scan: %w", err)
		}
		course.Tags = []string(tags)
		courses = append(courses, &course)
	}
	return courses, rows.Err()
}
