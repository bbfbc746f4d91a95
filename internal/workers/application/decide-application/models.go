// internal/workers/application/decide-application/models.go
package decideapplication

import "acadgrant/internal/models"

const (
	DecisionApprove = "approve"
	DecisionDeny    = "deny"
)

type Input struct {
	ScholarshipID string          `json:"scholarshipId"`
	ApplicantID   models.RecordID `json:"applicantId"`
	Decision      string          `json:"decision"`
	// Amount overrides the scholarship's grant amount, in ether.
	Amount string `json:"amount,omitempty"`
}

type Output struct {
	ScholarshipID   string `json:"scholarshipId"`
	ApplicantID     string `json:"applicantId"`
	Email           string `json:"email"`
	Status          string `json:"status"`
	Amount          string `json:"amount,omitempty"`
	TransactionHash string `json:"transactionHash,omitempty"`
}
