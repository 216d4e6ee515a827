// Package config loads and saves the board's defaults as JSON under the
// user's config directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"ArrowBoard/internal/export"
	"ArrowBoard/internal/snap"
	"ArrowBoard/internal/state"
)

const (
	appDir     = "arrowboard"
	configFile = "config.json"
)

// Config is everything the board remembers between runs. Arrows themselves
// are never stored.
type Config struct {
	Settings state.Settings `json:"settings"`
	Export   export.Options `json:"export"`
	// Anchors placed on a new board.
	Anchors []snap.Anchor `json:"anchors,omitempty"`

	path string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Settings: state.DefaultSettings(),
		Export:   export.DefaultOptions(),
	}
}

// DefaultPath returns ~/.config/arrowboard/config.json or the platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, appDir, configFile)
}

// Load reads the configuration at path. A missing file yields the defaults;
// fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	c := Default()
	c.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[CONFIG] No config at %s, using defaults", path)
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}

	c.Settings = c.Settings.Normalize()
	log.Printf("[CONFIG] Loaded %s", path)
	return c, nil
}

// Path is where the configuration was loaded from and will be saved to.
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration back to its path, creating the directory
// if needed.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = DefaultPath()
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("could not create config dir: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("could not write config: %w", err)
	}
	log.Printf("[CONFIG] Saved %s", c.path)
	return nil
}
