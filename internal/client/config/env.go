package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig is the DTO for the environment overlay. Empty values keep the
// previous stage's result.
type envConfig struct {
	ServerBaseURL  string        `env:"CONEKTA_SERVER_URL"`
	RequestTimeout time.Duration `env:"CONEKTA_REQUEST_TIMEOUT"`
	StateDSN       string        `env:"CONEKTA_STATE_DB"`
}

// parseDotEnv loads a .env file from the working directory into the
// process environment, if one exists. Missing files are fine; already-set
// variables are not overridden.
func parseDotEnv() {
	_ = godotenv.Load()
}

// parseEnv overlays cfg with values from CONEKTA_* environment variables.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.StateDSN != "" {
		cfg.StateDSN = ec.StateDSN
	}
}
