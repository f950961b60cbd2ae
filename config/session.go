package config

import (
	"strings"
	"time"
)

// SessionBackend selects where sessions are persisted.
type SessionBackend string

const (
	SessionBackendFile  SessionBackend = "file"
	SessionBackendRedis SessionBackend = "redis"
)

const defaultSessionTTL = 12 * time.Hour

// SessionConfig contains session persistence configuration.
type SessionConfig struct {
	Backend SessionBackend `env:"BACKEND" envDefault:"file"`
	// File is the session file path. Empty means the user config directory.
	File string        `env:"FILE"`
	TTL  time.Duration `env:"TTL"     envDefault:"12h"`
}

// Sanitize normalises the backend name and falls back to file storage for
// unknown values.
func (c *SessionConfig) Sanitize() {
	c.Backend = SessionBackend(strings.ToLower(strings.TrimSpace(string(c.Backend))))
	if c.Backend != SessionBackendRedis {
		c.Backend = SessionBackendFile
	}
	c.File = strings.TrimSpace(c.File)
	if c.TTL <= 0 {
		c.TTL = defaultSessionTTL
	}
}

// RedisConfig contains Redis configuration for the session backend.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	DB                 int      `env:"DB"                   envDefault:"0"`
	KeyPrefix          string   `env:"KEY_PREFIX"           envDefault:"talenthub:session:"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:""`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
}

// Sanitize trims addresses and drops empty sentinel entries.
func (c *RedisConfig) Sanitize() {
	c.URI = strings.TrimSpace(c.URI)
	if c.DB < 0 {
		c.DB = 0
	}
	nodes := c.SentinelNodes[:0]
	for _, n := range c.SentinelNodes {
		if n = strings.TrimSpace(n); n != "" {
			nodes = append(nodes, n)
		}
	}
	c.SentinelNodes = nodes
	if len(c.SentinelNodes) == 0 {
		c.UseSentinel = false
	}
}
