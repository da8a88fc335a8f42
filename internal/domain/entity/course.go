package entity

import "time"

// Course represents a training course offered by an institution.
// Only active courses are eligible for search results.
type Course struct {
	ID              string
	Title           string
	Description     string
	InstitutionName string
	Category        string
	Duration        int // total hours
	Level           string
	Tags            []string
	IsActive        bool
	CreatedAt       time.Time
}
