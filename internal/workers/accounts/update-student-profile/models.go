// internal/workers/accounts/update-student-profile/models.go
package updatestudentprofile

import "acadgrant/internal/models"

// Input holds the sections being edited. A nil section is left as stored.
type Input struct {
	BasicInfo       *models.BasicInfo    `json:"basicInfo,omitempty"`
	AcademicInfo    *models.AcademicInfo `json:"academicInfo,omitempty"`
	Achievements    []string             `json:"achievements,omitempty"`
	ExtraCurricular []string             `json:"extraCurricular,omitempty"`
}

type Output struct {
	Updated bool                  `json:"updated"`
	Profile models.StudentProfile `json:"profile"`
}
