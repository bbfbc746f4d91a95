// internal/workers/scholarship/create-scholarship/models.go
package createscholarship

import "acadgrant/internal/models"

// Input is step two of the scholarship form.
type Input struct {
	models.Repayment
}

type Output struct {
	ScholarshipID    string             `json:"scholarshipId"`
	OrganizationName string             `json:"organizationName"`
	Scholarship      models.Scholarship `json:"scholarship"`
}
