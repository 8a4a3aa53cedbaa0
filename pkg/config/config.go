package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

type Viewport struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

type AppConfig struct {
	Language    string   `json:"language" yaml:"language"`
	Viewport    Viewport `json:"viewport" yaml:"viewport"`
	LogLevel    string   `json:"log_level" yaml:"log_level"`
	LogFormat   string   `json:"log_format" yaml:"log_format"`
	RecentFiles []string `json:"recent_files" yaml:"recent_files"`
}

// Default returns the configuration used when no file exists.
func Default() *AppConfig {
	return &AppConfig{
		Language:  "en",
		Viewport:  Viewport{Width: 800, Height: 500},
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// DefaultPath is the config file location under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "variance-chart", "config.yaml"), nil
}

// LoadConfig reads the config at the default path. A missing file yields the defaults.
func LoadConfig() (*AppConfig, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), err
	}
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Load reads a JSON or YAML config file; fields it leaves out keep their defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), err
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return Default(), fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to the default path.
func SaveConfig(cfg *AppConfig) error {
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	return Save(path, cfg)
}

// Save writes cfg as JSON or YAML depending on the extension of path.
func Save(path string, cfg *AppConfig) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(cfg, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AddRecentFile moves path to the front of the recent files list, keeping at most limit entries.
func (c *AppConfig) AddRecentFile(path string, limit int) {
	files := []string{path}
	for _, f := range c.RecentFiles {
		if f != path {
			files = append(files, f)
		}
	}
	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}
	c.RecentFiles = files
}
