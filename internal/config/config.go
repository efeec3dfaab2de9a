package config

import "github.com/codedoc/solution-analyzer/internal/summary"

// Config represents the complete analyzer configuration. It can be loaded
// from .analyzer/config.yml with environment variable overrides.
type Config struct {
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// OutputConfig controls where the semantic summary is written.
type OutputConfig struct {
	Path string `yaml:"path" mapstructure:"path"` // summary destination, relative to the working directory
}

// AnalysisConfig controls the extraction worker pool.
type AnalysisConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"` // 0 means one worker per CPU
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level string `yaml:"level" mapstructure:"level"` // debug, info, warn, error
	Dir   string `yaml:"dir" mapstructure:"dir"`     // when set, also log to rotated files in this directory
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Path: summary.DefaultFileName,
		},
		Analysis: AnalysisConfig{
			Workers: 0,
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "",
		},
	}
}
