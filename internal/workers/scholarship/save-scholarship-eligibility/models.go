// internal/workers/scholarship/save-scholarship-eligibility/models.go
package savescholarshipeligibility

import "acadgrant/internal/models"

// Input is step one of the scholarship form.
type Input struct {
	models.Eligibility
}

type Output struct {
	EligibilitySaved bool               `json:"eligibilitySaved"`
	Eligibility      models.Eligibility `json:"eligibility"`
}
