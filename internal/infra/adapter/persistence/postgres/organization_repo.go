package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"empleo-search/internal/domain/entity"
	"empleo-search/internal/pkg/searchutil"
	"empleo-search/internal/repository"
)

type OrganizationRepo struct {
	db Querier
}

func NewOrganizationRepo(db Querier) repository.OrganizationRepository {
	return &OrganizationRepo{db: db}
}

func (repo *OrganizationRepo) Search(ctx context.Context, query string, filters repository.SearchFilters, limit, offset int) ([]*entity.Organization, error) {
	cs := &conditionSet{}

	pattern := searchutil.ContainsPattern(query)
	cs.add("(name ILIKE $%[1]d OR description ILIKE $%[1]d OR business_sector ILIKE $%[1]d)", pattern)

	if filters.Location != nil {
		cs.add("address ILIKE $%d", searchutil.ContainsPattern(*filters.Location))
	}
	if filters.Category != nil {
		cs.add("business_sector ILIKE $%d", searchutil.ContainsPattern(*filters.Category))
	}

	stmt := fmt.Sprintf(`
SELECT id, name, description, business_sector, website, address, company_size, created_at
FROM organizations
%s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d`, cs.clause(), cs.next(), cs.next()+1)

	args := append(cs.args, limit, offset)
	rows, err := repo.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	orgs := make([]*entity.Organization, 0, limit)
	for rows.Next() {
		var org entity.Organization
		var description sql.NullString
		if err := rows.Scan(&org.ID, &org.Name, &description, &org.BusinessSector,
			&org.Website, &org.Address, &org.CompanySize, &org.CreatedAt); err != nil {
			return nil, fmt.Errorf("Search: Scan: %w", err)
		}
		if description.Valid {
			org.Description = &description.String
		}
		orgs = append(orgs, &org)
	}
	return orgs, rows.Err()
}

func (repo *OrganizationRepo) SuggestNames(ctx context.Context, query string, limit int) ([]string, error) {
	const stmt = `
SELECT name
FROM organizations
WHERE name ILIKE $1
LIMIT $2`

	rows, err := repo.db.QueryContext(ctx, stmt, searchutil.ContainsPattern(query), limit)
	if err != nil {
		return nil, fmt.Errorf("SuggestNames: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names := make([]string, 0, limit)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("SuggestNames: Scan: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
