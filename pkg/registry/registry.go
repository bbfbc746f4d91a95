// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"os"
	"sort"
)

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// Default lists the activities the grant manager implements.
func Default() *ActivityRegistry {
	return &ActivityRegistry{
		Version:     "1.0.0",
		LastUpdated: "2026-10-19",
		Activities: []Activity{
			{
				DisplayName: "Register contributor",
				Description: "Replaces the single contributor account",
				Category:    "accounts",
				TaskType:    "register-contributor",
				ErrorCodes:  []string{"VALIDATION_FAILED", "STORAGE_FAILED"},
				Retries:     3,
			},
			{
				DisplayName: "Log in",
				Description: "Checks credentials for a role and sets its session flag",
				Category:    "accounts",
				TaskType:    "account-login",
				ErrorCodes:  []string{"INVALID_CREDENTIALS", "NO_ACCOUNT", "VALIDATION_FAILED"},
				Retries:     3,
			},
			{
				DisplayName: "Log out",
				Category:    "accounts",
				TaskType:    "account-logout",
				ErrorCodes:  []string{"VALIDATION_FAILED"},
				Retries:     3,
			},
			{
				DisplayName: "Register student",
				Description: "Stores student credentials and the profile built from the sign-up form",
				Category:    "accounts",
				TaskType:    "register-student",
				ErrorCodes:  []string{"VALIDATION_FAILED", "STORAGE_FAILED"},
				Retries:     3,
			},
			{
				DisplayName: "Update student profile",
				Category:    "accounts",
				TaskType:    "update-student-profile",
				Session:     "student",
				ErrorCodes:  []string{"NOT_LOGGED_IN", "VALIDATION_FAILED"},
				Retries:     3,
			},
			{
				DisplayName: "Save scholarship eligibility",
				Description: "Step one of scholarship creation",
				Category:    "scholarship",
				TaskType:    "save-scholarship-eligibility",
				Session:     "contributor",
				ErrorCodes:  []string{"NOT_LOGGED_IN", "VALIDATION_FAILED"},
				Retries:     3,
			},
			{
				DisplayName: "Create scholarship",
				Description: "Step two: publishes the draft with repayment terms",
				Category:    "scholarship",
				TaskType:    "create-scholarship",
				Session:     "contributor",
				ErrorCodes:  []string{"NOT_LOGGED_IN", "VALIDATION_FAILED"},
				Retries:     3,
			},
			{
				DisplayName: "List scholarships",
				Category:    "scholarship",
				TaskType:    "list-scholarships",
				ErrorCodes:  []string{"NOT_LOGGED_IN"},
				Retries:     3,
				Tags:        []string{"read-only"},
			},
			{
				DisplayName: "Submit application",
				Category:    "application",
				TaskType:    "submit-application",
				Session:     "student",
				ErrorCodes:  []string{"NOT_LOGGED_IN", "RECORD_NOT_FOUND", "DUPLICATE_APPLICATION"},
				Retries:     3,
			},
			{
				DisplayName: "List applicants",
				Category:    "application",
				TaskType:    "list-applicants",
				Session:     "contributor",
				ErrorCodes:  []string{"NOT_LOGGED_IN", "RECORD_NOT_FOUND"},
				Retries:     3,
				Tags:        []string{"read-only"},
			},
			{
				DisplayName: "List my applications",
				Category:    "application",
				TaskType:    "list-student-applications",
				Session:     "student",
				ErrorCodes:  []string{"NOT_LOGGED_IN"},
				Retries:     3,
				Tags:        []string{"read-only"},
			},
			{
				DisplayName: "Decide application",
				Description: "Approve pays the institute wallet before recording Accepted; deny records Rejected",
				Category:    "application",
				TaskType:    "decide-application",
				Session:     "contributor",
				ErrorCodes: []string{
					"NOT_LOGGED_IN", "RECORD_NOT_FOUND", "INVALID_STATUS_TRANSITION", "DECISION_IN_PROGRESS", "INVALID_AMOUNT",
					"WALLET_UNAVAILABLE", "USER_REJECTED", "TRANSACTION_FAILED",
				},
				Retries: 1,
				Tags:    []string{"payment"},
			},
			{
				DisplayName: "Notify application decision",
				Category:    "application",
				TaskType:    "notify-application-decision",
				ErrorCodes:  []string{"RECORD_NOT_FOUND", "INVALID_STATUS_TRANSITION", "NOTIFICATION_SEND_FAILED"},
				Retries:     3,
			},
		},
	}
}

func (r *ActivityRegistry) Find(taskType string) (Activity, bool) {
	for _, a := range r.Activities {
		if a.TaskType == taskType {
			return a, true
		}
	}
	return Activity{}, false
}

// Unknown returns the names that match no activity, sorted.
func (r *ActivityRegistry) Unknown(names []string) []string {
	var out []string
	for _, n := range names {
		if _, ok := r.Find(n); !ok {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
