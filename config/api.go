package config

import (
	"strings"
	"time"
)

const (
	defaultAPIBaseURL   = "http://localhost:3000/api"
	defaultAPIUserAgent = "talenthub"
	minAPITimeout       = time.Second
)

// APIConfig contains REST API client configuration.
type APIConfig struct {
	BaseURL   string        `env:"BASE_URL"   envDefault:"http://localhost:3000/api"`
	Timeout   time.Duration `env:"TIMEOUT"    envDefault:"15s"`
	UserAgent string        `env:"USER_AGENT" envDefault:"talenthub"`
}

// Sanitize trims the base URL and enforces a minimum timeout.
func (c *APIConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = defaultAPIBaseURL
	}
	if c.Timeout < minAPITimeout {
		c.Timeout = minAPITimeout
	}
	if c.UserAgent = strings.TrimSpace(c.UserAgent); c.UserAgent == "" {
		c.UserAgent = defaultAPIUserAgent
	}
}
