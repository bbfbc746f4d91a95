// internal/workers/accounts/account-login/validation.go
package accountlogin

import "acadgrant/internal/common/validation"

func InputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"role", "email", "password"},
		Properties: map[string]validation.Property{
			"role": {
				Type: "string",
				Enum: []string{"contributor", "student"},
			},
			"email":    validation.NonEmptyString("account email"),
			"password": validation.NonEmptyString("account password"),
		},
	}
}
