package config

//go:generate go run ../tools/schema-generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConversionConfig defines how subtitle files are read and converted.
type ConversionConfig struct {
	// Mode is the output mode used when --paragraphs is not given.
	// "single" (default): one continuous block of text.
	// "paragraphs": one paragraph per subtitle cue.
	Mode string `yaml:"mode,omitempty"`

	// Encodings lists the character encodings tried, in order, when reading
	// a file. Defaults to utf-8 then latin-1.
	Encodings []string `yaml:"encodings,omitempty"`
}

// OutputConfig defines where and how results are written.
type OutputConfig struct {
	// Extension replaces the input extension for the default CLI output path.
	Extension string `yaml:"extension,omitempty"`

	// Suffix replaces the input extension for the default output path in
	// interactive mode.
	Suffix string `yaml:"suffix,omitempty"`

	// ShowBanner prints a header above text written to stdout.
	ShowBanner *bool `yaml:"show_banner,omitempty"`
}

// Config is the top-level configuration structure for srt2txt.
type Config struct {
	Conversion ConversionConfig `yaml:"conversion,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	show := true
	return Config{
		Conversion: ConversionConfig{
			Mode:      "single",
			Encodings: []string{"utf-8", "latin-1"},
		},
		Output: OutputConfig{
			Extension:  ".txt",
			Suffix:     "_text.txt",
			ShowBanner: &show,
		},
	}
}

// DefaultPath is the config file location used when none is given.
func DefaultPath() string {
	return expandPath("~/.config/srt2txt/config.yml")
}

// Load reads the config file at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(expandPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.merge(fileCfg)
	return cfg, nil
}

func (c *Config) merge(o Config) {
	if o.Conversion.Mode != "" {
		c.Conversion.Mode = o.Conversion.Mode
	}
	if len(o.Conversion.Encodings) > 0 {
		c.Conversion.Encodings = o.Conversion.Encodings
	}
	if o.Output.Extension != "" {
		c.Output.Extension = o.Output.Extension
	}
	if o.Output.Suffix != "" {
		c.Output.Suffix = o.Output.Suffix
	}
	if o.Output.ShowBanner != nil {
		c.Output.ShowBanner = o.Output.ShowBanner
	}
}

// BannerEnabled reports whether stdout output gets a header.
func (c Config) BannerEnabled() bool {
	return c.Output.ShowBanner == nil || *c.Output.ShowBanner
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
