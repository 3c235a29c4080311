package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nyaya.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, "ipc_sections.json", cfg.Data.Resources.Sections)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: "127.0.0.1:8080"
  cors_origins: ["http://localhost:5173"]
  rate_limit:
    rps: 5
    burst: 10
  read_timeout: 5s
data:
  dir: /srv/nyaya
  helplines: contacts.json
logging:
  level: debug
  json: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 5.0, cfg.Server.RateLimit.RPS)
	assert.Equal(t, 10, cfg.Server.RateLimit.Burst)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout, "untouched fields keep defaults")
	assert.Equal(t, "/srv/nyaya", cfg.Data.Dir)
	assert.Equal(t, "contacts.json", cfg.Data.Resources.Helplines)
	assert.Equal(t, "ipc_crime.csv", cfg.Data.IPCCrime)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.JSON)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  addr: \":9000\"\n")
	t.Setenv(EnvAddr, ":7000")
	t.Setenv(EnvDataDir, "/tmp/data")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogJSON, "true")
	t.Setenv(EnvTracing, "1")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "/tmp/data", cfg.Data.Dir)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Logging.JSON)
	assert.True(t, cfg.Tracing.Enabled)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "bad yaml", body: "server: [unclosed"},
		{name: "bad level", body: "logging:\n  level: verbose\n"},
		{name: "negative rps", body: "server:\n  rate_limit:\n    rps: -1\n"},
		{name: "bad addr", body: "server:\n  addr: nope\n"},
		{name: "empty data dir", body: "data:\n  dir: \"\"\n"},
		{name: "empty resource file", body: "data:\n  ipc_sections: \"\"\n"},
		{name: "tracing without name", body: "tracing:\n  enabled: true\n  service_name: \"\"\n"},
		{name: "bad bool env", env: map[string]string{EnvLogJSON: "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeConfig(t, tt.body)
			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyEnv_OnlySetVariables(t *testing.T) {
	cfg := Default()
	env := map[string]string{EnvLogLevel: "error"}
	require.NoError(t, cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}))

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, ":5000", cfg.Server.Addr)
}
