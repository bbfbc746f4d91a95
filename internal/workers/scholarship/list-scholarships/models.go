// internal/workers/scholarship/list-scholarships/models.go
package listscholarships

import "acadgrant/internal/models"

const (
	// ScopeOrganization is the contributor dashboard: the session
	// organization's own scholarships.
	ScopeOrganization = "organization"
	// ScopeAll is what a logged-in student browses.
	ScopeAll = "all"
)

type Input struct {
	Scope string `json:"scope,omitempty"`
}

type Output struct {
	Scope        string               `json:"scope"`
	Scholarships []models.Scholarship `json:"scholarships"`
	Count        int                  `json:"count"`
}
