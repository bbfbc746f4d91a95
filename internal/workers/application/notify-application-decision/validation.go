// internal/workers/application/notify-application-decision/validation.go
package notifyapplicationdecision

import "acadgrant/internal/common/validation"

func InputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"event", "scholarshipId", "applicantId"},
		Properties: map[string]validation.Property{
			"event":         {Type: "string", Enum: []string{EventDecided, EventSubmitted}},
			"scholarshipId": validation.NonEmptyString("scholarship the application belongs to"),
			"applicantId":   {Description: "applicant entry id, string or number"},
		},
	}
}
