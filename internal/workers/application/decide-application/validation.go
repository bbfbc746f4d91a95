// internal/workers/application/decide-application/validation.go
package decideapplication

import "acadgrant/internal/common/validation"

func InputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"scholarshipId", "applicantId", "decision"},
		Properties: map[string]validation.Property{
			"scholarshipId": validation.NonEmptyString("scholarship being decided"),
			// older applicant ids are JSON numbers
			"applicantId": {Description: "applicant entry id, string or number"},
			"decision":    {Type: "string", Enum: []string{DecisionApprove, DecisionDeny}},
			"amount":      {Type: "string", Pattern: `^([0-9]+(\.[0-9]+)?)?$`},
		},
	}
}
