package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// Scan
	RootDir      string `toml:"root_dir"`      // Directory Dir is resolved against
	Dir          string `toml:"dir"`           // Section to build, relative to RootDir
	RootMarker   string `toml:"root_marker"`   // Segment links are made relative to
	VendorMarker string `toml:"vendor_marker"` // Directories never descended into
	Extension    string `toml:"extension"`

	// Output
	Format string `toml:"format"` // "json" or "yaml"
	Output string `toml:"output"` // File path, "-" for stdout
	Indent int    `toml:"indent"`

	Verbose bool `toml:"verbose"`
}

func Load() Config {
	cfg := Config{
		RootDir:      envOr("DOCNAV_ROOT", "docs"),
		Dir:          os.Getenv("DOCNAV_DIR"),
		RootMarker:   envOr("DOCNAV_ROOT_MARKER", "docs"),
		VendorMarker: envOr("DOCNAV_VENDOR_MARKER", "node_modules"),
		Extension:    envOr("DOCNAV_EXT", ".md"),

		Format: envOr("DOCNAV_FORMAT", "json"),
		Output: envOr("DOCNAV_OUTPUT", "-"),
		Indent: envInt("DOCNAV_INDENT", 2),

		Verbose: envBool("DOCNAV_VERBOSE", false),
	}

	if cfg.Indent < 0 {
		cfg.Indent = 2
	}

	return cfg
}

// LoadFile overlays the settings of a TOML file onto cfg. Keys missing
// from the file keep their current value.
func LoadFile(cfg Config, path string) (Config, error) {
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.RootDir == "" {
		return fmt.Errorf("root directory is required")
	}
	if filepath.IsAbs(c.Dir) || strings.HasPrefix(filepath.ToSlash(c.Dir), "/") {
		return fmt.Errorf("dir %q must be relative to the root directory", c.Dir)
	}
	if c.RootMarker == "" {
		return fmt.Errorf("root marker is required")
	}
	if c.VendorMarker == "" {
		return fmt.Errorf("vendor marker is required")
	}
	if c.Extension == "" || c.Extension[0] != '.' {
		return fmt.Errorf("extension %q must start with a dot", c.Extension)
	}
	switch c.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("unsupported format: %s", c.Format)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
