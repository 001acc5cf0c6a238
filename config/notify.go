package config

// NotifyConfig contains delivery event notification configuration.
type NotifyConfig struct {
	// EventFilter is an optional JMESPath expression evaluated against
	// each webhook event payload. Only matching events reach the sinks.
	// Example: "event == 'bounced' || event == 'complained'"
	// Leave empty to forward every event.
	EventFilter string `env:"EVENT_FILTER" envDefault:""`
}
