// Package entity defines the core domain entities consumed by the search
// platform. The search layer reads these entities through repository
// interfaces and never mutates them; ownership of the underlying tables
// belongs to the main marketplace application.
package entity

import "time"

// JobStatus represents the publication status of a job posting.
type JobStatus string

const (
	JobStatusActive JobStatus = "ACTIVE"
	JobStatusPaused JobStatus = "PAUSED"
	JobStatusClosed JobStatus = "CLOSED"
	JobStatusDraft  JobStatus = "DRAFT"
)

// JobPosting represents a job offer published by an organization.
// Only postings with status ACTIVE are eligible for search results.
type JobPosting struct {
	ID               string
	Title            string
	Description      string
	Requirements     string
	OrganizationName string
	Location         string
	SalaryMin        *float64
	SalaryMax        *float64
	ContractType     string
	WorkModality     string
	Status           JobStatus
	CreatedAt        time.Time
}
