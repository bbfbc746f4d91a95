// internal/workers/application/decide-application/config.go
package decideapplication

import (
	"fmt"
	"time"
)

type Config struct {
	Timeout time.Duration
	// EnforceOwnership rejects decisions on scholarships the session
	// organization does not offer.
	EnforceOwnership bool
}

// LoadConfig leaves room for a full payment confirmation; the job
// timeout has to outlast the wallet's confirm timeout.
func LoadConfig() *Config {
	return &Config{
		Timeout:          3 * time.Minute,
		EnforceOwnership: true,
	}
}

func (c *Config) Validate(confirmTimeout time.Duration) error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if confirmTimeout > 0 && c.Timeout <= confirmTimeout {
		return fmt.Errorf("timeout %s must exceed wallet confirm timeout %s", c.Timeout, confirmTimeout)
	}
	return nil
}
