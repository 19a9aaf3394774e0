package providers

import (
	"fmt"
	"nellis/internal/structures"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const AppName = "NellisAdmin"

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("logger.dir", os.TempDir())
	v.SetDefault("fixtures.path", "")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 8)
	v.SetDefault("cache.ttl", 30*time.Second)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("console.prompt", "nellis> ")
	v.SetDefault("console.color", true)
	v.SetDefault("activity.size", 20)
}

// NewConfigProvider loads the YAML file named by the flags (optional), applies
// NELLIS_* environment overrides and validates the result.
func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	setDefaults(v)

	_ = v.BindEnv("logger.level", "NELLIS_LOG_LEVEL")
	_ = v.BindEnv("logger.dir", "NELLIS_LOG_DIR")
	_ = v.BindEnv("fixtures.path", "NELLIS_FIXTURES")
	_ = v.BindEnv("cache.enabled", "NELLIS_CACHE_ENABLED")
	_ = v.BindEnv("cache.size", "NELLIS_CACHE_SIZE")
	_ = v.BindEnv("metrics.enabled", "NELLIS_METRICS_ENABLED")

	if flags.ConfigPath != "" {
		filename := filepath.Base(flags.ConfigPath)
		v.AddConfigPath(filepath.Dir(flags.ConfigPath))
		v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	err := v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode
	conf.JSON = flags.JSON
	if flags.NoColor {
		conf.Console.Color = false
	}

	return &conf, nil
}
