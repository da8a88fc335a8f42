package entity

import "time"

// Organization represents a company registered on the platform.
// Description is nullable in the underlying store; the search layer
// substitutes a display fallback when it is absent.
type Organization struct {
	ID             string
	Name           string
	Description    *string
	BusinessSector string
	Website        string
	Address        string
	CompanySize    string
	CreatedAt      time.Time
}
