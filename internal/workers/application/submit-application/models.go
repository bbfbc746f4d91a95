// internal/workers/application/submit-application/models.go
package submitapplication

type Input struct {
	ScholarshipID string `json:"scholarshipId"`
}

type Output struct {
	ScholarshipID    string `json:"scholarshipId"`
	ApplicantID      string `json:"applicantId"`
	OrganizationName string `json:"organizationName"`
	Email            string `json:"email"`
	Status           string `json:"status"`
}
