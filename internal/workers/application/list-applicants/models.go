// internal/workers/application/list-applicants/models.go
package listapplicants

import "acadgrant/internal/models"

type Input struct {
	ScholarshipID string `json:"scholarshipId"`
	// Status narrows the list to one status. Empty lists everyone.
	Status string `json:"status,omitempty"`
}

type Output struct {
	Scholarship models.Scholarship      `json:"scholarship"`
	Applicants  []models.ApplicantEntry `json:"applicants"`
	Count       int                     `json:"count"`
	Pending     int                     `json:"pending"`
}
