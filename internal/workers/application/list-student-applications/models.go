// internal/workers/application/list-student-applications/models.go
package liststudentapplications

import "acadgrant/internal/models"

// Input carries no fields; the student comes from the session.
type Input struct{}

type Output struct {
	Email        string                      `json:"email"`
	Applications []models.ApplicationSummary `json:"applications"`
	Count        int                         `json:"count"`
	Accepted     int                         `json:"accepted"`
	Rejected     int                         `json:"rejected"`
	Pending      int                         `json:"pending"`
}
