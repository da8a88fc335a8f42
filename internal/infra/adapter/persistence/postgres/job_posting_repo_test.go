package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"empleo-search/internal/domain/entity"
	"empleo-search/internal/infra/adapter/persistence/postgres"
	"empleo-search/internal/repository"
)

/* ──────────────────────────────── helpers ──────────────────────────────── */

var jobColumns = []string{
	"id", "title", "description", "requirements", "organization_name",
	"location", "salary_min", "salary_max", "contract_type", "work_modality",
	"status", "created_at",
}

func jobRow(job *entity.JobPosting) *sqlmock.Rows {
	var salaryMin, salaryMax any
	if job.SalaryMin != nil {
		salaryMin = *job.SalaryMin
	}
	if job.SalaryMax != nil {
		salaryMax = *job.SalaryMax
	}
	return sqlmock.NewRows(jobColumns).AddRow(
		job.ID, job.Title, job.Description, job.Requirements,
		job.OrganizationName, job.Location, salaryMin, salaryMax,
		job.ContractType, job.WorkModality, job.Status, job.CreatedAt,
	)
}

func floatPtr(f float64) *float64 { return &f }

/* ──────────────────────────────── 1. SearchActive ──────────────────────────────── */

func TestJobPostingRepo_SearchActive(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	want := &entity.JobPosting{
		ID: "j1", Title: "Desarrollador Frontend", Description: "React y CSS",
		Requirements: "2 años de experiencia", OrganizationName: "Acme",
		Location: "La Paz", SalaryMin: floatPtr(3500), SalaryMax: floatPtr(5000),
		ContractType: "FULL_TIME", WorkModality: "REMOTE",
		Status: entity.JobStatusActive, CreatedAt: now,
	}

	mock.ExpectQuery(`FROM job_postings\s+WHERE status = 'ACTIVE'`).
		WithArgs("%react%", 10, 0).
		WillReturnRows(jobRow(want))

	repo := postgres.NewJobPostingRepo(db)
	got, err := repo.SearchActive(context.Background(), "react", repository.SearchFilters{}, 10, 0)
	if err != nil {
		t.Fatalf("SearchActive err=%v", err)
	}
	if diff := cmp.Diff([]*entity.JobPosting{want}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestJobPostingRepo_SearchActive_Filters(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	location := "la paz"
	filters := repository.SearchFilters{
		Location:  &location,
		DateFrom:  &from,
		DateTo:    &to,
		SalaryMin: floatPtr(3000),
		SalaryMax: floatPtr(8000),
	}

	mock.ExpectQuery(regexp.QuoteMeta(
		`location ILIKE $2 AND created_at >= $3 AND created_at <= $4 AND salary_min >= $5 AND salary_max <= $6`)).
		WithArgs("%ventas%", "%la paz%", from, to, 3000.0, 8000.0, 20, 0).
		WillReturnRows(sqlmock.NewRows(jobColumns)) // empty set OK

	repo := postgres.NewJobPostingRepo(db)
	if _, err := repo.SearchActive(context.Background(), "ventas", filters, 20, 0); err != nil {
		t.Fatalf("SearchActive err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestJobPostingRepo_SearchActive_NullSalaries(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	rows := sqlmock.NewRows(jobColumns).AddRow(
		"j2", "Pasante de Marketing", "Apoyo al equipo", "", "Acme",
		"El Alto", nil, nil, "INTERNSHIP", "ONSITE", "ACTIVE", now,
	)
	mock.ExpectQuery(`FROM job_postings`).
		WithArgs("%marketing%", 10, 0).
		WillReturnRows(rows)

	repo := postgres.NewJobPostingRepo(db)
	got, err := repo.SearchActive(context.Background(), "marketing", repository.SearchFilters{}, 10, 0)
	if err != nil {
		t.Fatalf("SearchActive err=%v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len=%d", len(got))
	}
	if got[0].SalaryMin != nil || got[0].SalaryMax != nil {
		t.Fatalf("NULL salaries must map to nil, got %v %v", got[0].SalaryMin, got[0].SalaryMax)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestJobPostingRepo_SearchActive_QueryError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM job_postings`).
		WillReturnError(errors.New("connection refused"))

	repo := postgres.NewJobPostingRepo(db)
	if _, err := repo.SearchActive(context.Background(), "x", repository.SearchFilters{}, 10, 0); err == nil {
		t.Fatal("SearchActive should propagate the query error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────────── 2. SuggestTitles ──────────────────────────────── */

func TestJobPostingRepo_SuggestTitles(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows([]string{"title"}).
		AddRow("Desarrollador React").
		AddRow("React Native Developer")
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE status = 'ACTIVE' AND title ILIKE $1`)).
		WithArgs("%react%", 5).
		WillReturnRows(rows)

	repo := postgres.NewJobPostingRepo(db)
	got, err := repo.SuggestTitles(context.Background(), "react", 5)
	if err != nil {
		t.Fatalf("SuggestTitles err=%v", err)
	}
	if diff := cmp.Diff([]string{"Desarrollador React", "React Native Developer"}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
