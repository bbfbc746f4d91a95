// internal/workers/scholarship/save-scholarship-eligibility/config.go
package savescholarshipeligibility

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{Timeout: 10 * time.Second}
}
