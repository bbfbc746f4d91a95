// internal/models/scholarship.go
package models

// Numeric-looking fields are kept as the strings the contributor typed.
type Eligibility struct {
	GrantAmount string `json:"grantAmount"`
	Nationality string `json:"nationality"`
	CGPA        string `json:"cgpa"`
}

type Repayment struct {
	MaxRepayment     string `json:"maxRepayment"`
	InterestRate     string `json:"interestRate"`
	MoratoriumPeriod string `json:"moratoriumPeriod"`
}

type Scholarship struct {
	ID               string      `json:"id"`
	OrganizationName string      `json:"organizationName"`
	Website          string      `json:"website"`
	Eligibility      Eligibility `json:"eligibility"`
	Repayment        Repayment   `json:"repayment"`
}

const (
	DefaultOrganizationName = "Unknown Organization"
	DefaultWebsite          = "N/A"
)
