package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.BannerEnabled())
}

func TestLoadMergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte(`conversion:
  mode: paragraphs
  encodings: [windows-1252]
output:
  show_banner: false
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "paragraphs", cfg.Conversion.Mode)
	assert.Equal(t, []string{"windows-1252"}, cfg.Conversion.Encodings)
	assert.Equal(t, ".txt", cfg.Output.Extension)
	assert.Equal(t, "_text.txt", cfg.Output.Suffix)
	assert.False(t, cfg.BannerEnabled())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("conversion: [unclosed"), 0644))

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)
}
