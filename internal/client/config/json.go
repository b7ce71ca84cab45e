package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/devhub/internal/flagx"
	"github.com/dmitrijs2005/devhub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be written either as strings like "30s"
// or as integer nanoseconds. Absent fields leave the current value alone.
type JsonConfig struct {
	APIBaseURL          string          `json:"api_base_url"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	DatabaseFile        string          `json:"database_file"`
	HealthCheckInterval *timex.Duration `json:"health_check_interval"`
	LogLevel            string          `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when neither is given, nothing is
// loaded. Read or unmarshal errors panic (caller may recover).
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.HealthCheckInterval != nil {
		cfg.HealthCheckInterval = jc.HealthCheckInterval.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
