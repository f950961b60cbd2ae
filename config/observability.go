package config

import (
	"log/slog"
	"strings"
)

// LogConfig controls the structured logger.
type LogConfig struct {
	Format string `env:"FORMAT" envDefault:"json"`
	Level  string `env:"LEVEL"  envDefault:"info"`
}

// Sanitize normalises the format to "json" or "text".
func (c *LogConfig) Sanitize() {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format != "text" {
		c.Format = "json"
	}
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	if c.Level == "" {
		c.Level = "info"
	}
}

// SlogLevel maps Level onto slog. Unknown values log at info.
func (c LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// MetricsConfig controls where Prometheus metrics go at the end of a run.
type MetricsConfig struct {
	// Textfile is a node_exporter textfile collector path. Empty disables.
	Textfile string `env:"TEXTFILE"`
}

// Sanitize trims the path.
func (c *MetricsConfig) Sanitize() {
	c.Textfile = strings.TrimSpace(c.Textfile)
}

// IsEnabled returns true when metrics are written after sanitisation.
func (c MetricsConfig) IsEnabled() bool {
	return c.Textfile != ""
}
