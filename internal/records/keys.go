// internal/records/keys.go
package records

import "strings"

// Storage keys. Nothing outside this package builds key strings.
const (
	KeyContributorUser        = "contributorUser"
	KeyContributorLoggedIn    = "contributorLoggedIn"
	KeyStudentUser            = "studentUser"
	KeyStudentLoggedIn        = "studentLoggedIn"
	KeyAllScholarships        = "allScholarships"
	KeyAllApplications        = "allApplications"
	KeyScholarshipEligibility = "scholarshipEligibility"

	studentProfilePrefix      = "studentProfile_"
	studentApplicationsPrefix = "applications_"
)

// sessionFlagValue is the literal a logged-in flag holds.
const sessionFlagValue = "true"

func StudentProfileKey(email string) string {
	return studentProfilePrefix + email
}

func StudentApplicationsKey(email string) string {
	return studentApplicationsPrefix + email
}

// keyFamily drops the per-student suffix so metric labels stay bounded.
func keyFamily(key string) string {
	for _, prefix := range []string{studentProfilePrefix, studentApplicationsPrefix} {
		if strings.HasPrefix(key, prefix) {
			return prefix + "*"
		}
	}
	return key
}
