// internal/workers/accounts/register-contributor/validation.go
package registercontributor

import "acadgrant/internal/common/validation"

func InputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"email", "password", "organizationName"},
		Properties: map[string]validation.Property{
			"email": {
				Type:        "string",
				Format:      "email",
				Description: "contributor login email",
			},
			"password":         validation.NonEmptyString("contributor password"),
			"organizationName": validation.NonEmptyString("organization shown on every scholarship"),
		},
	}
}
