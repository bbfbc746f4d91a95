// internal/workers/accounts/register-student/models.go
package registerstudent

import "acadgrant/internal/models"

// Input is the flat sign-up form.
type Input struct {
	models.StudentRegistration
}

type Output struct {
	Registered bool   `json:"registered"`
	StudentID  string `json:"studentId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}
