package email

import (
	"time"

	"github.com/vaenkat/health-ecosystem-hub/config"
)

// Config holds SMTP delivery settings.
type Config struct {
	Enabled bool
	From    string

	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPUseTLS         bool
	SMTPTimeoutSeconds int
}

func DefaultConfig() Config {
	return Config{
		SMTPPort:           587,
		SMTPUseTLS:         true,
		SMTPTimeoutSeconds: 30,
	}
}

func (c Config) SMTPTimeout() time.Duration {
	if c.SMTPTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.SMTPTimeoutSeconds) * time.Second
}

// FromCentralConfig maps the central email section onto Config.
func FromCentralConfig(c config.EmailConfig) Config {
	cfg := DefaultConfig()
	cfg.Enabled = c.Enabled
	cfg.From = c.From
	cfg.SMTPHost = c.SMTPHost
	cfg.SMTPPort = c.SMTPPort
	cfg.SMTPUsername = c.SMTPUsername
	cfg.SMTPPassword = c.SMTPPassword
	cfg.SMTPUseTLS = c.SMTPUseTLS
	cfg.SMTPTimeoutSeconds = c.TimeoutSeconds
	return cfg
}
