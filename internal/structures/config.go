package structures

import "time"

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type FixturesConfig struct {
	// Path is optional; the embedded seed is used when empty.
	Path string `yaml:"path"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type ConsoleConfig struct {
	Prompt string `yaml:"prompt" validate:"required"`
	Color  bool   `yaml:"color"`
}

type ActivityConfig struct {
	Size int `yaml:"size" validate:"required|min:1"`
}

type Config struct {
	AppName  string
	Debug    bool
	JSON     bool
	Path     string
	Logger   LoggerConfig   `yaml:"logger"`
	Fixtures FixturesConfig `yaml:"fixtures"`
	Cache    CacheConfig    `yaml:"cache"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Console  ConsoleConfig  `yaml:"console"`
	Activity ActivityConfig `yaml:"activity"`
}
