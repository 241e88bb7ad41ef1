package metrics

import "fmt"

// Config defines settings for the Prometheus metrics endpoint.
type Config struct {
	// PrometheusEnabled exposes /metrics on a dedicated server when true.
	PrometheusEnabled bool `json:"prometheus_enabled"`
	// PrometheusPort is the listen address of the metrics server.
	PrometheusPort string `json:"prometheus_port"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":9090"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.PrometheusEnabled && c.PrometheusPort == "" {
		return fmt.Errorf("prometheus_port is required when prometheus is enabled")
	}
	return nil
}
