// internal/workers/accounts/account-logout/validation.go
package accountlogout

import "acadgrant/internal/common/validation"

func InputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"role"},
		Properties: map[string]validation.Property{
			"role": {Type: "string", Enum: []string{"contributor", "student"}},
		},
	}
}
