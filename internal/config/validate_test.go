package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for config validation:
// - Default configuration is valid
// - Empty output path, negative workers, and unknown log levels are rejected
// - Multiple problems are reported together

func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate(Default()))
}

func TestValidate_EmptyOutputPath(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Output.Path = "   "
	assert.ErrorIs(t, Validate(cfg), ErrEmptyOutputPath)
}

func TestValidate_NegativeWorkers(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Analysis.Workers = -1
	assert.ErrorIs(t, Validate(cfg), ErrInvalidWorkers)
}

func TestValidate_UnknownLogLevel(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Logging.Level = "verbose"
	assert.ErrorIs(t, Validate(cfg), ErrInvalidLogLevel)
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Output.Path = ""
	cfg.Analysis.Workers = -2
	err := Validate(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.path")
	assert.Contains(t, err.Error(), "workers")
}
