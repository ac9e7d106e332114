// Package config loads the runtime settings of the console. Sources are
// overlaid in order: built-in defaults, a .env file, environment
// variables, an optional JSON config file, and finally command-line
// flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the console.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API, including the
//     version prefix (e.g. http://localhost:8000/api/v1).
//   - RequestTimeout: transport timeout for backend calls.
//   - StateDSN: path of the local sqlite database holding client state.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	StateDSN       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000/api/v1"
	c.RequestTimeout = 15 * time.Second
	c.StateDSN = "conekta.db"
}

// LoadConfig constructs a Config by running all overlay stages.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseDotEnv()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
