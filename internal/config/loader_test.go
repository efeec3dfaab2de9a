package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codedoc/solution-analyzer/internal/summary"
)

// Test Plan for the config loader:
// - Missing config file falls back to defaults
// - Values from .analyzer/config.yml override defaults
// - Environment variables override the config file
// - Malformed config files and invalid values fail the load

func TestLoader_DefaultsWhenNoConfigFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfigFromDir(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, summary.DefaultFileName, cfg.Output.Path)
	assert.Equal(t, 0, cfg.Analysis.Workers)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "", cfg.Logging.Dir)
}

func TestLoader_ReadsConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configDir := filepath.Join(dir, ".analyzer")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(`
output:
  path: build/index.json
analysis:
  workers: 8
logging:
  level: debug
`), 0o644))

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "build/index.json", cfg.Output.Path)
	assert.Equal(t, 8, cfg.Analysis.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, ".analyzer")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("output:\n  path: from-file.json\n"), 0o644))

	t.Setenv("ANALYZER_OUTPUT_PATH", "from-env.json")
	t.Setenv("ANALYZER_ANALYSIS_WORKERS", "3")

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env.json", cfg.Output.Path)
	assert.Equal(t, 3, cfg.Analysis.Workers)
}

func TestLoader_MalformedConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configDir := filepath.Join(dir, ".analyzer")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("output: [broken\n"), 0o644))

	_, err := LoadConfigFromDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoader_InvalidValuesRejected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configDir := filepath.Join(dir, ".analyzer")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("logging:\n  level: loud\n"), 0o644))

	_, err := LoadConfigFromDir(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}
