package entity

import "time"

// Institution represents an educational institution or a government entity
// that publishes courses on the platform. InstitutionType is an enumeration
// in the underlying store; CustomType carries the free-form label used when
// the type is OTHER.
type Institution struct {
	ID              string
	Name            string
	InstitutionType string
	Department      string
	Website         string
	CustomType      *string
	IsActive        bool
	CreatedAt       time.Time
}
