package search

import "empleo-search/internal/domain/entity"

// Type tags the entity collection a search result came from.
type Type string

const (
	TypeJob          Type = "job"
	TypeOrganization Type = "organization"
	TypeCandidate    Type = "candidate"
	TypeCourse       Type = "course"
	TypeInstitution  Type = "institution"
)

// AllTypes returns every searchable entity type in fan-out order. The order
// also breaks score ties: results from earlier types sort first among
// equals.
func AllTypes() []Type {
	return []Type{TypeJob, TypeOrganization, TypeCandidate, TypeCourse, TypeInstitution}
}

// Display fallbacks for entities whose source description is absent.
const (
	fallbackOrganizationDescription = "Empresa sin descripción"
	fallbackCandidateDescription    = "Perfil profesional"
	fallbackInstitutionDescription  = "Institución educativa"
)

// Result is the normalized envelope returned for every matched entity.
// It is constructed fresh per request and has no identity beyond it.
type Result struct {
	Type        Type           `json:"type"`
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	URL         string         `json:"url"`
	Metadata    map[string]any `json:"metadata"`
	Score       int            `json:"score"`
}

func jobResult(query string, job *entity.JobPosting) Result {
	return Result{
		Type:        TypeJob,
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		URL:         "/jobs/" + job.ID,
		Metadata: map[string]any{
			"organizationName": job.OrganizationName,
			"location":         job.Location,
			"salaryMin":        job.SalaryMin,
			"salaryMax":        job.SalaryMax,
			"contractType":     job.ContractType,
			"workModality":     job.WorkModality,
			"createdAt":        job.CreatedAt,
		},
		Score: RelevanceScore(query, job.Title, job.Description),
	}
}

func organizationResult(query string, org *entity.Organization) Result {
	// Scoring uses the source description; the Spanish fallback is a
	// display value only.
	source := ""
	if org.Description != nil {
		source = *org.Description
	}
	description := source
	if description == "" {
		description = fallbackOrganizationDescription
	}
	return Result{
		Type:        TypeOrganization,
		ID:          org.ID,
		Title:       org.Name,
		Description: description,
		URL:         "/companies/" + org.ID,
		Metadata: map[string]any{
			"businessSector": org.BusinessSector,
			"website":        org.Website,
			"address":        org.Address,
			"companySize":    org.CompanySize,
			"createdAt":      org.CreatedAt,
		},
		Score: RelevanceScore(query, org.Name, source),
	}
}

func candidateResult(query string, profile *entity.CandidateProfile) Result {
	source := ""
	if profile.ProfessionalSummary != nil {
		source = *profile.ProfessionalSummary
	}
	description := source
	if description == "" {
		description = fallbackCandidateDescription
	}
	return Result{
		Type:        TypeCandidate,
		ID:          profile.UserID,
		Title:       profile.FullName(),
		Description: description,
		URL:         "/profiles/" + profile.UserID,
		Metadata: map[string]any{
			"jobTitle":  profile.JobTitle,
			"skills":    profile.RelevantSkills,
			"city":      profile.City,
			"createdAt": profile.CreatedAt,
		},
		Score: RelevanceScore(query, profile.FullName(), source),
	}
}

func courseResult(query string, course *entity.Course) Result {
	return Result{
		Type:        TypeCourse,
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		URL:         "/courses/" + course.ID,
		Metadata: map[string]any{
			"institutionName": course.InstitutionName,
			"category":        course.Category,
			"duration":        course.Duration,
			"level":           course.Level,
			"tags":            course.Tags,
			"createdAt":       course.CreatedAt,
		},
		Score: RelevanceScore(query, course.Title, course.Description),
	}
}

func institutionResult(query string, inst *entity.Institution) Result {
	// Institutions carry no description; the envelope always shows the
	// constant and only the name participates in scoring.
	return Result{
		Type:        TypeInstitution,
		ID:          inst.ID,
		Title:       inst.Name,
		Description: fallbackInstitutionDescription,
		URL:         "/institutions/" + inst.ID,
		Metadata: map[string]any{
			"institutionType": inst.InstitutionType,
			"department":      inst.Department,
			"website":         inst.Website,
			"customType":      inst.CustomType,
			"createdAt":       inst.CreatedAt,
		},
		Score: RelevanceScore(query, inst.Name, ""),
	}
}
