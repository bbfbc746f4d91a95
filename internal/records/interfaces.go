// internal/records/interfaces.go
package records

import (
	"context"

	"acadgrant/internal/models"
)

// AccountRecords is what workers need from Accounts.
type AccountRecords interface {
	RegisterContributor(ctx context.Context, email, password, organizationName string) (models.Identity, error)
	RegisterStudent(ctx context.Context, reg models.StudentRegistration) (models.StudentProfile, error)
	Login(ctx context.Context, role models.Role, email, password string) (models.Identity, error)
	Logout(ctx context.Context, role models.Role) error
	RequireSession(ctx context.Context, role models.Role) (models.Identity, error)
	CurrentContributor(ctx context.Context) (models.Identity, error)
	CurrentStudent(ctx context.Context) (models.Identity, error)
}

type ScholarshipCatalog interface {
	SaveEligibilityDraft(ctx context.Context, e models.Eligibility) error
	CreateScholarship(ctx context.Context, e models.Eligibility, r models.Repayment, organizationName, website string) (models.Scholarship, error)
	CreateFromDraft(ctx context.Context, r models.Repayment) (models.Scholarship, error)
	List(ctx context.Context) ([]models.Scholarship, error)
	ListForOrganization(ctx context.Context, organizationName string) ([]models.Scholarship, error)
	FindByID(ctx context.Context, id string) (models.Scholarship, error)
}

type ApplicationLedger interface {
	SubmitApplication(ctx context.Context, s models.Scholarship, profile models.StudentProfile) (models.ApplicantEntry, error)
	HasApplied(ctx context.Context, email, scholarshipID string) (bool, error)
	Decide(ctx context.Context, scholarshipID string, applicantID models.RecordID, decision models.ApplicationStatus, txHash string) (models.ApplicantEntry, error)
	Applicants(ctx context.Context, scholarshipID string) ([]models.ApplicantEntry, error)
	Applicant(ctx context.Context, scholarshipID string, applicantID models.RecordID) (models.ApplicantEntry, error)
	StudentApplications(ctx context.Context, email string) ([]models.ApplicationSummary, error)
	Profile(ctx context.Context, email string) (models.StudentProfile, error)
	SaveProfile(ctx context.Context, p models.StudentProfile) error
}

// Decider approves and denies applicants.
type Decider interface {
	Approve(ctx context.Context, scholarshipID string, applicantID models.RecordID, amountOverride string) (*DecisionResult, error)
	Deny(ctx context.Context, scholarshipID string, applicantID models.RecordID) (*DecisionResult, error)
}

var (
	_ AccountRecords     = (*Accounts)(nil)
	_ ScholarshipCatalog = (*Catalog)(nil)
	_ ApplicationLedger  = (*Ledger)(nil)
	_ Decider            = (*DecisionService)(nil)
)
