// internal/workers/application/notify-application-decision/config.go
package notifyapplicationdecision

import (
	"time"

	"acadgrant/internal/common/config"
)

type Config struct {
	EmailEnabled bool
	SNSEnabled   bool
	// PortalURL is linked from decision emails when set.
	PortalURL string
	Timeout   time.Duration
}

func LoadConfig(n config.NotificationConfig) *Config {
	return &Config{
		EmailEnabled: n.Email.Enabled,
		SNSEnabled:   n.SNS.Enabled,
		Timeout:      30 * time.Second,
	}
}
