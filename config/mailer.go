package config

import "time"

// MailerConfig contains delivery provider (Resend) configuration.
type MailerConfig struct {
	// APIKey authenticates against the delivery provider API. Required.
	APIKey string `env:"API_KEY,required"`

	// BaseURL overrides the provider API endpoint (useful for testing).
	BaseURL string `env:"BASE_URL" envDefault:"https://api.resend.com"`

	// Timeout bounds each provider API call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to mailer configuration values.
func (m *MailerConfig) Sanitize() {
	if m.Timeout < time.Second {
		m.Timeout = time.Second
	}
}
