package providers

import (
	"nellis/internal/structures"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigProvider_Defaults(t *testing.T) {
	conf, err := NewConfigProvider(&structures.CliFlags{})
	require.NoError(t, err)

	assert.Equal(t, AppName, conf.AppName)
	assert.Equal(t, "info", conf.Logger.Level)
	assert.True(t, conf.Cache.Enabled)
	assert.Equal(t, 8, conf.Cache.Size)
	assert.Equal(t, 30*time.Second, conf.Cache.TTL)
	assert.True(t, conf.Metrics.Enabled)
	assert.Equal(t, "nellis> ", conf.Console.Prompt)
	assert.True(t, conf.Console.Color)
	assert.Equal(t, 20, conf.Activity.Size)
	assert.Empty(t, conf.Fixtures.Path)
}

func TestNewConfigProvider_Flags(t *testing.T) {
	conf, err := NewConfigProvider(&structures.CliFlags{DebugMode: true, JSON: true, NoColor: true})
	require.NoError(t, err)

	assert.True(t, conf.Debug)
	assert.True(t, conf.JSON)
	assert.False(t, conf.Console.Color)
}

func TestNewConfigProvider_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nellis.yaml")
	yaml := `logger:
  level: debug
  dir: ` + dir + `
cache:
  enabled: false
  ttl: 5s
console:
  prompt: "admin> "
activity:
  size: 5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, path, conf.Path)
	assert.Equal(t, "debug", conf.Logger.Level)
	assert.Equal(t, dir, conf.Logger.Dir)
	assert.False(t, conf.Cache.Enabled)
	assert.Equal(t, 5*time.Second, conf.Cache.TTL)
	assert.Equal(t, "admin> ", conf.Console.Prompt)
	assert.Equal(t, 5, conf.Activity.Size)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}

func TestNewConfigProvider_InvalidFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("activity:\n  size: 0\n"), 0644))

	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestNewConfigProvider_EnvOverrides(t *testing.T) {
	t.Setenv("NELLIS_LOG_LEVEL", "warn")
	t.Setenv("NELLIS_FIXTURES", "/srv/nellis/seed.json.zst")
	t.Setenv("NELLIS_CACHE_ENABLED", "false")
	t.Setenv("NELLIS_METRICS_ENABLED", "false")

	conf, err := NewConfigProvider(&structures.CliFlags{})
	require.NoError(t, err)

	assert.Equal(t, "warn", conf.Logger.Level)
	assert.Equal(t, "/srv/nellis/seed.json.zst", conf.Fixtures.Path)
	assert.False(t, conf.Cache.Enabled)
	assert.False(t, conf.Metrics.Enabled)
}
