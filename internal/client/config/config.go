// Package config assembles the runtime settings of the DevHub CLI from
// layered sources: built-in defaults, environment (including a .env file),
// an optional JSON file, and command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the DevHub CLI.
//
// Fields:
//   - APIBaseURL: root of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabaseFile: path of the local sqlite state (token, account snapshot).
//   - HealthCheckInterval: how often the client probes GET /health.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	DatabaseFile        string
	HealthCheckInterval time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 30 * time.Second
	c.DatabaseFile = "devhub.db"
	c.HealthCheckInterval = 15 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present), and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
