// Package config loads the optional .toonify.yaml settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable settings. Zero values fall back to defaults at
// the point of use.
type Config struct {
	Theme            string   `yaml:"theme"`             // "default" or "mono"
	NoColor          bool     `yaml:"no_color"`          // force uncolored output
	NoCopy           bool     `yaml:"no_copy"`           // never write the clipboard
	MaxFrames        int      `yaml:"max_frames"`        // frames kept per record
	NoisePatterns    []string `yaml:"noise_patterns"`    // extra frame-noise regexes
	SourceExtensions []string `yaml:"source_extensions"` // extra file extensions, no dot
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Theme: "default"}
}

// Load reads .toonify.yaml from the working directory, then from
// $XDG_CONFIG_HOME/toonify/config.yaml (or ~/.config). A missing file is
// not an error; a malformed one is.
func Load() (*Config, error) {
	cfg := Default()
	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return cfg, nil
	}
	return cfg, nil
}

func searchPaths() []string {
	paths := []string{".toonify.yaml"}
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configDir = filepath.Join(home, ".config")
		}
	}
	if configDir != "" {
		paths = append(paths, filepath.Join(configDir, "toonify", "config.yaml"))
	}
	return paths
}
