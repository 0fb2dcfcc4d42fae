// Package config handles viewer configuration loading.
package config

import "terrasim/internal/terrain"

// Config holds all viewer settings.
type Config struct {
	Viewer  ViewerConfig   `yaml:"viewer"`
	Terrain terrain.Config `yaml:"terrain"`
	Logging LoggingConfig  `yaml:"logging"`
}

// ViewerConfig holds display settings.
type ViewerConfig struct {
	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewer: ViewerConfig{
			Scale: 3,
			TPS:   60,
		},
		Terrain: terrain.DefaultConfig(),
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
