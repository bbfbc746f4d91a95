// internal/workers/scholarship/create-scholarship/config.go
package createscholarship

import "time"

type Config struct {
	Timeout time.Duration
	// RequireDraft fails the job when step one was never saved instead of
	// publishing a scholarship with empty eligibility.
	RequireDraft bool
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      10 * time.Second,
		RequireDraft: false,
	}
}
