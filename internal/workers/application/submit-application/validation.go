// internal/workers/application/submit-application/validation.go
package submitapplication

import "acadgrant/internal/common/validation"

func InputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"scholarshipId"},
		Properties: map[string]validation.Property{
			"scholarshipId": validation.NonEmptyString("scholarship applied to"),
		},
	}
}
