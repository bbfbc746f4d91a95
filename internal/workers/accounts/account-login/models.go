// internal/workers/accounts/account-login/models.go
package accountlogin

type Input struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Output is copied into the process scope, so it never carries the password.
type Output struct {
	LoggedIn         bool   `json:"loggedIn"`
	Role             string `json:"role"`
	Email            string `json:"email"`
	OrganizationName string `json:"organizationName,omitempty"`
	StudentID        string `json:"studentId,omitempty"`
	Name             string `json:"name,omitempty"`
}
