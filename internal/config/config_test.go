package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe/internal/engine"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":2888", cfg.Server.Addr)
	assert.Equal(t, engine.LevelMaster, cfg.Engine.DefaultLevel)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, `
server:
  addr: "127.0.0.1:9000"
engine:
  default_level: novice
  seed: 7
log:
  level: debug
  format: json
metrics:
  enabled: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, engine.LevelNovice, cfg.Engine.DefaultLevel)
	assert.Equal(t, int64(7), cfg.Engine.Seed)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadRejectsUnknownLevel(t *testing.T) {
	path := writeFile(t, "engine:\n  default_level: grandmaster\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, engine.ErrInvalidLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnvOverrides(t *testing.T) {
	env := map[string]string{
		"TTT_ADDR":      ":7000",
		"TTT_LEVEL":     "random",
		"TTT_SEED":      "42",
		"TTT_LOG_LEVEL": "warn",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	cfg := Default()
	require.NoError(t, cfg.applyEnv(lookup))
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, engine.LevelRandom, cfg.Engine.DefaultLevel)
	assert.Equal(t, int64(42), cfg.Engine.Seed)
	assert.Equal(t, "warn", cfg.Log.Level)
	require.NoError(t, cfg.Validate())

	env["TTT_SEED"] = "abc"
	cfg = Default()
	assert.ErrorIs(t, cfg.applyEnv(lookup), ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "loud"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.Log.Format = "xml"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.Server.Addr = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	l.Info("hidden")
	l.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
