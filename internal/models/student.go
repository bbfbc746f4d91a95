// internal/models/student.go
package models

type BasicInfo struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName"`
	Gender     string `json:"gender"`
	BirthMonth string `json:"birthMonth"`
	BirthDate  string `json:"birthDate"`
	BirthYear  string `json:"birthYear"`
}

type AcademicInfo struct {
	Institution     string `json:"institution"`
	FieldOfStudy    string `json:"fieldOfStudy"`
	CurrentCGPA     string `json:"currentCGPA"`
	InstituteWallet string `json:"instituteWallet"`
}

type StudentProfile struct {
	ID              RecordID     `json:"id"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	BasicInfo       BasicInfo    `json:"basicInfo"`
	AcademicInfo    AcademicInfo `json:"academicInfo"`
	Achievements    []string     `json:"achievements,omitempty"`
	ExtraCurricular []string     `json:"extraCurricular,omitempty"`
}

// StudentRegistration is the flat form a student fills in to sign up.
type StudentRegistration struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	FirstName       string `json:"firstName"`
	MiddleName      string `json:"middleName,omitempty"`
	LastName        string `json:"lastName"`
	Gender          string `json:"gender"`
	BirthMonth      string `json:"birthMonth"`
	BirthDate       string `json:"birthDate"`
	BirthYear       string `json:"birthYear"`
	Institution     string `json:"institution"`
	FieldOfStudy    string `json:"fieldOfStudy"`
	CurrentCGPA     string `json:"currentCGPA"`
	InstituteWallet string `json:"instituteWallet"`
}

func (r StudentRegistration) Profile(id RecordID) StudentProfile {
	return StudentProfile{
		ID:    id,
		Name:  r.FirstName + " " + r.LastName,
		Email: r.Email,
		BasicInfo: BasicInfo{
			FirstName:  r.FirstName,
			MiddleName: r.MiddleName,
			LastName:   r.LastName,
			Gender:     r.Gender,
			BirthMonth: r.BirthMonth,
			BirthDate:  r.BirthDate,
			BirthYear:  r.BirthYear,
		},
		AcademicInfo: AcademicInfo{
			Institution:     r.Institution,
			FieldOfStudy:    r.FieldOfStudy,
			CurrentCGPA:     r.CurrentCGPA,
			InstituteWallet: r.InstituteWallet,
		},
	}
}
