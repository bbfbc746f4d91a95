// internal/workers/accounts/update-student-profile/validation.go
package updatestudentprofile

import "acadgrant/internal/common/validation"

func InputSchema() validation.JSONSchema {
	stringList := &validation.Property{Type: "string"}
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"basicInfo": {
				Type:     "object",
				Required: []string{"firstName", "lastName"},
				Properties: map[string]validation.Property{
					"firstName": validation.NonEmptyString("first name"),
					"lastName":  validation.NonEmptyString("last name"),
				},
			},
			"academicInfo": {
				Type: "object",
				Properties: map[string]validation.Property{
					"instituteWallet": {Type: "string", Pattern: `^(0x[0-9a-fA-F]{40})?$`},
				},
			},
			"achievements":    {Type: "array", Items: stringList},
			"extraCurricular": {Type: "array", Items: stringList},
		},
	}
}
