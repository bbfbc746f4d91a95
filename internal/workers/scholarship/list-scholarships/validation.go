// internal/workers/scholarship/list-scholarships/validation.go
package listscholarships

import "acadgrant/internal/common/validation"

func InputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"scope": {Type: "string", Enum: []string{ScopeOrganization, ScopeAll}},
		},
	}
}
