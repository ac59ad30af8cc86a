package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"DOCNAV_ROOT", "DOCNAV_DIR", "DOCNAV_ROOT_MARKER", "DOCNAV_VENDOR_MARKER",
		"DOCNAV_EXT", "DOCNAV_FORMAT", "DOCNAV_OUTPUT", "DOCNAV_INDENT", "DOCNAV_VERBOSE",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "docs", cfg.RootDir)
	assert.Equal(t, "", cfg.Dir)
	assert.Equal(t, "docs", cfg.RootMarker)
	assert.Equal(t, "node_modules", cfg.VendorMarker)
	assert.Equal(t, ".md", cfg.Extension)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "-", cfg.Output)
	assert.Equal(t, 2, cfg.Indent)
	assert.False(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DOCNAV_ROOT", "/srv/site/handbook")
	t.Setenv("DOCNAV_DIR", "ops")
	t.Setenv("DOCNAV_ROOT_MARKER", "handbook")
	t.Setenv("DOCNAV_FORMAT", "yaml")
	t.Setenv("DOCNAV_INDENT", "4")
	t.Setenv("DOCNAV_VERBOSE", "true")

	cfg := Load()
	assert.Equal(t, "/srv/site/handbook", cfg.RootDir)
	assert.Equal(t, "ops", cfg.Dir)
	assert.Equal(t, "handbook", cfg.RootMarker)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, 4, cfg.Indent)
	assert.True(t, cfg.Verbose)
}

func TestLoadBadEnvFallsBack(t *testing.T) {
	t.Setenv("DOCNAV_INDENT", "wide")
	t.Setenv("DOCNAV_VERBOSE", "maybe")

	cfg := Load()
	assert.Equal(t, 2, cfg.Indent)
	assert.False(t, cfg.Verbose)
}

func TestLoadFile(t *testing.T) {
	content := `
root_dir = "website/docs"
vendor_marker = "vendor"
format = "yaml"
indent = 0
`
	path := filepath.Join(t.TempDir(), "docnav.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	base := Config{RootDir: "docs", RootMarker: "docs", VendorMarker: "node_modules", Extension: ".md", Format: "json", Indent: 2}
	cfg, err := LoadFile(base, path)
	require.NoError(t, err)
	assert.Equal(t, "website/docs", cfg.RootDir)
	assert.Equal(t, "vendor", cfg.VendorMarker)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, 0, cfg.Indent)
	// Keys absent from the file are kept.
	assert.Equal(t, "docs", cfg.RootMarker)
	assert.Equal(t, ".md", cfg.Extension)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(Config{}, filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("root_dir = [unterminated"), 0o644))
	_, err = LoadFile(Config{}, bad)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{RootDir: "docs", Dir: "guide/advanced", RootMarker: "docs", VendorMarker: "node_modules", Extension: ".md", Format: "json"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no root", func(c *Config) { c.RootDir = "" }},
		{"absolute dir", func(c *Config) { c.Dir = "/srv/site/docs/guide" }},
		{"no root marker", func(c *Config) { c.RootMarker = "" }},
		{"no vendor marker", func(c *Config) { c.VendorMarker = "" }},
		{"no extension", func(c *Config) { c.Extension = "" }},
		{"extension without dot", func(c *Config) { c.Extension = "md" }},
		{"unknown format", func(c *Config) { c.Format = "xml" }},
	}
	for _, tt := range tests {
		c := valid
		tt.mutate(&c)
		assert.Error(t, c.Validate(), tt.name)
	}
}
