// internal/workers/accounts/account-logout/models.go
package accountlogout

type Input struct {
	Role string `json:"role"`
}

type Output struct {
	LoggedOut bool   `json:"loggedOut"`
	Role      string `json:"role"`
}
