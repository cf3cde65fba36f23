package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[backend]
url = "http://backend.local/api"
timeout = 5

[auth]
jwt_secret = "secret"

[agenda]
poll_interval_seconds = 30
filter_store = "redis"

[redis]
addr = "redis:6379"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMergesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://backend.local/api", cfg.Backend.URL)
	assert.Equal(t, 30*time.Second, cfg.Agenda.PollInterval())
	assert.Equal(t, FilterStoreRedis, cfg.Agenda.FilterStore)
	assert.Equal(t, 20, cfg.Checkin.RetryLimit)
	assert.Equal(t, 30*time.Millisecond, cfg.Checkin.RetryDelay())
	assert.Equal(t, "America/Sao_Paulo", cfg.Agenda.Location().String())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://override")
	t.Setenv("HTTP_PORT", "7000")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "http://override", cfg.Backend.URL)
	assert.Equal(t, 7000, cfg.Server.HTTPPort)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing backend", func(c *Config) { c.Backend.URL = "" }},
		{"missing secret", func(c *Config) { c.Auth.JWTSecret = "" }},
		{"zero poll", func(c *Config) { c.Agenda.PollIntervalSeconds = 0 }},
		{"bad timezone", func(c *Config) { c.Agenda.Timezone = "Mars/Olympus" }},
		{"bad default open", func(c *Config) { c.Agenda.DefaultOpen = "8h" }},
		{"unknown store", func(c *Config) { c.Agenda.FilterStore = "etcd" }},
		{"postgres without db", func(c *Config) { c.Agenda.FilterStore = FilterStorePostgres }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Backend.URL = "http://x"
			cfg.Auth.JWTSecret = "s"
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
