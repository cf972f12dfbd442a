package network

import "time"

// Config holds score submission settings
type Config struct {
	// Endpoint is the full URL scores are POSTed to; empty disables submission
	Endpoint string

	// Timeout bounds each request
	Timeout time.Duration

	// MaxInFlight caps concurrent submissions; extra submissions fail fast
	MaxInFlight int
}

// DefaultConfig returns a disabled configuration
func DefaultConfig() *Config {
	return &Config{
		Endpoint:    "",
		Timeout:     5 * time.Second,
		MaxInFlight: 4,
	}
}

// Enabled reports whether an endpoint is configured
func (c *Config) Enabled() bool {
	return c != nil && c.Endpoint != ""
}
