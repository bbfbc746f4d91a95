// internal/workers/accounts/register-student/validation.go
package registerstudent

import "acadgrant/internal/common/validation"

const walletPattern = `^(0x[0-9a-fA-F]{40})?$`

func InputSchema(requireWallet bool) validation.JSONSchema {
	required := []string{"email", "password", "firstName", "lastName"}
	if requireWallet {
		required = append(required, "instituteWallet")
	}

	return validation.JSONSchema{
		Type:     "object",
		Required: required,
		Properties: map[string]validation.Property{
			"email":      {Type: "string", Format: "email"},
			"password":   validation.NonEmptyString("student password"),
			"firstName":  validation.NonEmptyString("first name"),
			"middleName": {Type: "string"},
			"lastName":   validation.NonEmptyString("last name"),
			"gender":     {Type: "string"},
			"birthMonth": {Type: "string"},
			"birthDate":  {Type: "string"},
			"birthYear":  {Type: "string", Pattern: `^([0-9]{4})?$`},
			"institution": {
				Type: "string",
			},
			"fieldOfStudy": {Type: "string"},
			"currentCGPA":  {Type: "string"},
			"instituteWallet": {
				Type:        "string",
				Pattern:     walletPattern,
				Description: "address approved grants are paid to",
			},
		},
	}
}
