// internal/workers/application/list-applicants/validation.go
package listapplicants

import (
	"acadgrant/internal/common/validation"
	"acadgrant/internal/models"
)

func InputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"scholarshipId"},
		Properties: map[string]validation.Property{
			"scholarshipId": validation.NonEmptyString("scholarship owned by the session organization"),
			"status": {
				Type: "string",
				Enum: []string{
					string(models.StatusPending),
					string(models.StatusAccepted),
					string(models.StatusRejected),
				},
			},
		},
	}
}
