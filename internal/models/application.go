// internal/models/application.go
package models

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusAccepted ApplicationStatus = "Accepted"
	StatusRejected ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// ApplicantEntry is the contributor-facing copy of one application. It is a
// snapshot of the student's profile at submission time.
type ApplicantEntry struct {
	ID              RecordID          `json:"id"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Gender          string            `json:"gender"`
	BirthMonth      string            `json:"birthMonth"`
	BirthDate       string            `json:"birthDate"`
	BirthYear       string            `json:"birthYear"`
	Institution     string            `json:"institution"`
	FieldOfStudy    string            `json:"fieldOfStudy"`
	CurrentCGPA     string            `json:"currentCGPA"`
	InstituteWallet string            `json:"instituteWallet"`
	Status          ApplicationStatus `json:"status"`
	TransactionHash string            `json:"transactionHash,omitempty"`
	Achievements    []string          `json:"achievements,omitempty"`
	ExtraCurricular []string          `json:"extraCurricular,omitempty"`
}

// ApplicationSummary is the student-facing projection of an applicant entry.
type ApplicationSummary struct {
	ScholarshipID    string            `json:"scholarshipId"`
	OrganizationName string            `json:"organizationName"`
	Status           ApplicationStatus `json:"status"`
	TransactionHash  string            `json:"transactionHash,omitempty"`
}

func NewApplicantEntry(p StudentProfile) ApplicantEntry {
	entry := ApplicantEntry{
		ID:              p.ID,
		Name:            p.Name,
		Email:           p.Email,
		Gender:          p.BasicInfo.Gender,
		BirthMonth:      p.BasicInfo.BirthMonth,
		BirthDate:       p.BasicInfo.BirthDate,
		BirthYear:       p.BasicInfo.BirthYear,
		Institution:     p.AcademicInfo.Institution,
		FieldOfStudy:    p.AcademicInfo.FieldOfStudy,
		CurrentCGPA:     p.AcademicInfo.CurrentCGPA,
		InstituteWallet: p.AcademicInfo.InstituteWallet,
		Status:          StatusPending,
	}
	// no shared backing arrays with the profile
	if len(p.Achievements) > 0 {
		entry.Achievements = append([]string(nil), p.Achievements...)
	}
	if len(p.ExtraCurricular) > 0 {
		entry.ExtraCurricular = append([]string(nil), p.ExtraCurricular...)
	}
	return entry
}
