package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Fredson-Santos/conekta-bots/internal/flagx"
	"github.com/Fredson-Santos/conekta-bots/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so the file can specify timeouts either as strings
// like "15s" or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StateDSN       string         `json:"state_db"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flags. Without the flag nothing is loaded. Read or decode
// errors panic: a config file that exists but cannot be used is a startup
// defect, not something to silently skip.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.StateDSN != "" {
		cfg.StateDSN = jc.StateDSN
	}
}
