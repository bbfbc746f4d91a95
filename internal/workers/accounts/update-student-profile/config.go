// internal/workers/accounts/update-student-profile/config.go
package updatestudentprofile

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{Timeout: 10 * time.Second}
}
