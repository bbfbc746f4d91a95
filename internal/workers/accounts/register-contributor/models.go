// internal/workers/accounts/register-contributor/models.go
package registercontributor

type Input struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	OrganizationName string `json:"organizationName"`
}

type Output struct {
	Registered       bool   `json:"registered"`
	Email            string `json:"email"`
	OrganizationName string `json:"organizationName"`
}
