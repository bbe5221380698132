package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"har-to-k6/internal/logging"
)

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(heredoc.Doc(`
		output: out/script.js
		on_invalid: skip
		workers: 4
		sleep: 0
		options:
		  vus: 10
		  duration: 30s
		  thresholds:
		    http_req_duration: ["p(95)<500"]
		log:
		  level: debug
	`)))
	require.NoError(t, err)

	assert.Equal(t, "out/script.js", cfg.Output)
	assert.Equal(t, Skip, cfg.OnInvalid)
	assert.Equal(t, 4, cfg.Workers)
	assert.Zero(t, cfg.Sleep)
	assert.False(t, cfg.Verify)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Options["vus"])
	assert.Equal(t, "30s", cfg.Options["duration"])
}

func TestParse_KeepsDefaultsForAbsentKeys(t *testing.T) {
	cfg, err := Parse([]byte("verify: true\n"))
	require.NoError(t, err)

	assert.True(t, cfg.Verify)
	assert.Equal(t, Abort, cfg.OnInvalid)
	assert.InDelta(t, 1.0, cfg.Sleep, 0)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"policy", "on_invalid: ignore", "on_invalid"},
		{"workers", "workers: -1", "workers"},
		{"sleep", "sleep: -2", "sleep"},
		{"format", "format: xml", "format"},
		{"level", "log: {level: trace}", "log.level"},
		{"log format", "log: {format: xml}", "log.format"},
		{"options", "options: {nested: {1: x}}", "options"},
		{"syntax", "workers: [", "failed to parse config YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsEverything(t *testing.T) {
	cfg := Default()
	cfg.Workers = -1
	cfg.OnInvalid = "never"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
	assert.Contains(t, err.Error(), "on_invalid")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "har-to-k6.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLogging(t *testing.T) {
	cfg := Default()
	cfg.Log = Log{Level: "warn", Format: "json"}

	lc := cfg.Logging()
	assert.Equal(t, logging.LevelWarn, lc.Level)
	assert.Equal(t, logging.FormatJSON, lc.Format)
}

func TestMarshal_RoundTrips(t *testing.T) {
	cfg := Default()
	cfg.Workers = 3

	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
