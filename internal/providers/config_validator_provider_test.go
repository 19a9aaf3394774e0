package providers

import (
	"nellis/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Cache: structures.CacheConfig{
			Enabled: true,
			Size:    8,
			TTL:     30 * time.Second,
		},
		Console: structures.ConsoleConfig{
			Prompt: "nellis> ",
		},
		Activity: structures.ActivityConfig{
			Size: 20,
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_AllLogLevels(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"} {
		c := validConfig()
		c.Logger.Level = level
		assert.NoError(t, NewCnfValidator(c).Validate(), level)
	}
}

func TestConfigValidator_EmptyLogDir(t *testing.T) {
	c := validConfig()
	c.Logger.Dir = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyPrompt(t *testing.T) {
	c := validConfig()
	c.Console.Prompt = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroActivitySize(t *testing.T) {
	c := validConfig()
	c.Activity.Size = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_NegativeTTL(t *testing.T) {
	c := validConfig()
	c.Cache.TTL = -time.Second
	v := NewCnfValidator(c)
	assert.ErrorContains(t, v.Validate(), "cache ttl")
}

func TestConfigValidator_NegativeTTLIgnoredWhenCacheDisabled(t *testing.T) {
	c := validConfig()
	c.Cache.Enabled = false
	c.Cache.TTL = -time.Second
	v := NewCnfValidator(c)
	assert.NoError(t, v.Validate())
}
