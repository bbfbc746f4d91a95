// internal/workers/scholarship/create-scholarship/validation.go
package createscholarship

import "acadgrant/internal/common/validation"

const optionalDecimal = `^([0-9]+(\.[0-9]+)?)?$`

func InputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"maxRepayment":     {Type: "string", Pattern: optionalDecimal, Description: "years"},
			"interestRate":     {Type: "string", Pattern: optionalDecimal, Description: "percent per year"},
			"moratoriumPeriod": {Type: "string", Pattern: optionalDecimal, Description: "months"},
		},
	}
}
