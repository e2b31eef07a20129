package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "text", cfg.Output.DefaultFormat)
	assert.Empty(t, cfg.Reference.ActiveVersion)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visia.yaml")
	content := `
server:
  addr: ":9090"
reference:
  active_version: "2025.12"
output:
  default_format: "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "2025.12", cfg.Reference.ActiveVersion)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)

	// Untouched sections keep their defaults.
	assert.Equal(t, "info", cfg.Logging.Level)
}
