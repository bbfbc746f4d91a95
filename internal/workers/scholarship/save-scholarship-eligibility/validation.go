// internal/workers/scholarship/save-scholarship-eligibility/validation.go
package savescholarshipeligibility

import "acadgrant/internal/common/validation"

const decimalPattern = `^[0-9]+(\.[0-9]+)?$`

func InputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"grantAmount"},
		Properties: map[string]validation.Property{
			"grantAmount": {
				Type:        "string",
				Pattern:     decimalPattern,
				Description: "grant in ether, paid on approval",
			},
			"nationality": {Type: "string"},
			"cgpa":        {Type: "string", Pattern: `^([0-9]+(\.[0-9]+)?)?$`},
		},
	}
}
