package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyOutputPath indicates a missing summary destination
	ErrEmptyOutputPath = errors.New("empty output path")

	// ErrInvalidWorkers indicates an invalid worker pool size
	ErrInvalidWorkers = errors.New("invalid worker count")

	// ErrInvalidLogLevel indicates an unsupported log level
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if strings.TrimSpace(cfg.Output.Path) == "" {
		errs = append(errs, fmt.Errorf("%w: output.path is required", ErrEmptyOutputPath))
	}

	if cfg.Analysis.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: analysis.workers cannot be negative, got %d", ErrInvalidWorkers, cfg.Analysis.Workers))
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: must be debug, info, warn, or error, got '%s'", ErrInvalidLogLevel, cfg.Logging.Level))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
