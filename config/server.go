package config

import "fmt"

// ServerConfig defines settings for the valuation API server.
type ServerConfig struct {
	// Addr is the listen address of the API server.
	Addr string `json:"addr"`
	// RequestTimeoutSeconds bounds the total time spent per request.
	RequestTimeoutSeconds int `json:"request_timeout_seconds"`
	// ShutdownTimeoutSeconds bounds graceful shutdown on termination.
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds"`
	// CORSOrigins lists allowed origins for browser clients.
	CORSOrigins []string `json:"cors_origins"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8000"
	}
	if c.RequestTimeoutSeconds == 0 {
		c.RequestTimeoutSeconds = 60
	}
	if c.ShutdownTimeoutSeconds == 0 {
		c.ShutdownTimeoutSeconds = 5
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"*"}
	}
}

// Validate checks mandatory fields.
func (c ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.RequestTimeoutSeconds < 0 || c.ShutdownTimeoutSeconds < 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}
