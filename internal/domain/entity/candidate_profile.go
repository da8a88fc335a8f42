package entity

import "time"

// UserRole identifies the role a platform user was registered with.
type UserRole string

const (
	RoleYouth       UserRole = "YOUTH"
	RoleCompany     UserRole = "COMPANY"
	RoleInstitution UserRole = "INSTITUTION"
	RoleAdmin       UserRole = "ADMIN"
)

// CandidateProfile represents the public profile of a platform user.
// Only profiles with role YOUTH are eligible for candidate search.
type CandidateProfile struct {
	UserID              string
	FirstName           string
	LastName            string
	JobTitle            *string
	ProfessionalSummary *string
	RelevantSkills      []string
	City                string
	Role                UserRole
	CreatedAt           time.Time
}

// FullName returns the candidate's display name.
func (c *CandidateProfile) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
