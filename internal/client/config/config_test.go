package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"devhub"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()

	require.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "devhub.db", cfg.DatabaseFile)
	require.Equal(t, 15*time.Second, cfg.HealthCheckInterval)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("DEVHUB_API_URL", "https://devhub.example.com/api")
	t.Setenv("DEVHUB_REQUEST_TIMEOUT", "5s")
	t.Setenv("DEVHUB_DB_FILE", "/tmp/devhub-test.db")
	t.Setenv("DEVHUB_HEALTH_INTERVAL", "1m")
	t.Setenv("DEVHUB_LOG_LEVEL", "debug")

	cfg := LoadConfig()

	require.Equal(t, "https://devhub.example.com/api", cfg.APIBaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.Equal(t, "/tmp/devhub-test.db", cfg.DatabaseFile)
	require.Equal(t, time.Minute, cfg.HealthCheckInterval)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_InvalidEnvDurationIgnored(t *testing.T) {
	resetArgs(t)
	t.Setenv("DEVHUB_REQUEST_TIMEOUT", "not-a-duration")

	cfg := LoadConfig()

	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JsonFileOverridesEnv(t *testing.T) {
	t.Setenv("DEVHUB_API_URL", "http://env.example.com/api")

	file := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"api_base_url": "http://json.example.com/api",
		"request_timeout": "10s",
		"health_check_interval": "45s"
	}`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))

	resetArgs(t, "-c", file)

	cfg := LoadConfig()

	require.Equal(t, "http://json.example.com/api", cfg.APIBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, 45*time.Second, cfg.HealthCheckInterval)
	// Fields the file leaves out keep their previous value.
	require.Equal(t, "devhub.db", cfg.DatabaseFile)
}

func TestLoadConfig_FlagsWinOverEverything(t *testing.T) {
	t.Setenv("DEVHUB_API_URL", "http://env.example.com/api")
	t.Setenv("DEVHUB_LOG_LEVEL", "warn")

	resetArgs(t, "-a", "http://flag.example.com/api", "-t", "7", "-l", "error")

	cfg := LoadConfig()

	require.Equal(t, "http://flag.example.com/api", cfg.APIBaseURL)
	require.Equal(t, 7*time.Second, cfg.RequestTimeout)
	require.Equal(t, "error", cfg.LogLevel)
}

func TestLoadConfig_MissingJsonFilePanics(t *testing.T) {
	resetArgs(t, "-c", filepath.Join(t.TempDir(), "absent.json"))

	require.Panics(t, func() { LoadConfig() })
}
