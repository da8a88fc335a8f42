package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"empleo-search/internal/domain/entity"
	"empleo-search/internal/pkg/searchutil"
	"empleo-search/internal/repository"
)

type InstitutionRepo struct {
	db Querier
}

func NewInstitutionRepo(db Querier) repository.InstitutionRepository {
	return &InstitutionRepo{db: db}
}

// SearchActive intentionally ignores filters.Category: institution types are
// an enumeration in the store and the free-text category filter does not
// apply to them.
func (repo *InstitutionRepo) SearchActive(ctx context.Context, query string, filters repository.SearchFilters, limit, offset int) ([]*entity.Institution, error) {
	cs := &conditionSet{}
	cs.addRaw("is_active = TRUE")

	pattern := searchutil.ContainsPattern(query)
	cs.add("(name ILIKE $%[1]d OR department ILIKE $%[1]d)", pattern)

	stmt := fmt.Sprintf(`
SELECT id, name, institution_type, department, website, custom_type, is_active, created_at
FROM institutions
%s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d`, cs.clause(), cs.next(), cs.next()+1)

	args := append(cs.args, limit, offset)
	rows, err := repo.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("SearchActive: %w", err)
	}
	defer func() { _ = rows.Close() }()

	institutions := make([]*entity.Institution, 0, limit)
	for rows.Next() {
		var inst entity.Institution
		var customType sql.NullString
		if err := rows.Scan(&inst.ID, &inst.Name, &inst.InstitutionType,
			&inst.Department, &inst.Website, &customType, &inst.IsActive, &inst.CreatedAt); err != nil {
			return nil, fmt.Errorf("SearchActive: Scan: %w", err)
		}
		if customType.Valid {
			inst.CustomType = &customType.String
		}
		institutions = append(institutions, &inst)
	}
	return institutions, rows.Err()
}
