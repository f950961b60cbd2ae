package config

// AppConfig is the main application configuration struct that composes
// concern-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual config files for details
// on available environment variables:
//   - api.go: REST API client configuration
//   - session.go: Session persistence and Redis configuration
//   - observability.go: Logging and metrics configuration
type AppConfig struct {
	// API client configuration
	API APIConfig `envPrefix:"API_"`

	// Session persistence configuration
	Session SessionConfig `envPrefix:"SESSION_"`
	Redis   RedisConfig   `envPrefix:"REDIS_"`

	// Logging and metrics configuration
	Log     LogConfig     `envPrefix:"LOG_"`
	Metrics MetricsConfig `envPrefix:"METRICS_"`

	// Bulk operation configuration
	Bulk BulkConfig `envPrefix:"BULK_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Session.Sanitize()
	c.Redis.Sanitize()
	c.Log.Sanitize()
	c.Metrics.Sanitize()
	c.Bulk.Sanitize()
}

const (
	defaultBulkConcurrency = 4
	maxBulkConcurrency     = 16
)

// BulkConfig bounds fan-out for commands acting on several candidates.
type BulkConfig struct {
	// Concurrency is the number of candidate deletes in flight at once. Each
	// delete still runs its own steps strictly in order.
	Concurrency int `env:"CONCURRENCY" envDefault:"4"`
}

// Sanitize clamps Concurrency to [1, 16].
func (c *BulkConfig) Sanitize() {
	switch {
	case c.Concurrency <= 0:
		c.Concurrency = defaultBulkConcurrency
	case c.Concurrency > maxBulkConcurrency:
		c.Concurrency = maxBulkConcurrency
	}
}
