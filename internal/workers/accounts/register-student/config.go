// internal/workers/accounts/register-student/config.go
package registerstudent

import "time"

type Config struct {
	Timeout time.Duration
	// RequireWallet rejects registrations without an institute wallet,
	// which approval later pays into.
	RequireWallet bool
}

func LoadConfig() *Config {
	return &Config{
		Timeout:       10 * time.Second,
		RequireWallet: false,
	}
}
