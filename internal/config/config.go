package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds application configuration
type Config struct {
	Theme      string   `toml:"theme"`
	Groups     []string `toml:"groups"`      // Group class labels, outermost first
	DebounceMS int      `toml:"debounce_ms"` // Delay before a typed query is applied
	Format     string   `toml:"format"`      // Input format: markdown, tagged, indented or auto
}

// DefaultGroups are the class labels the markdown importer gives to headings
var DefaultGroups = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// Load loads the config file from the standard location
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil // Return default if can't find config path
	}

	return LoadFromFile(configPath)
}

// LoadFromFile loads config from a specific file
func LoadFromFile(filePath string) (*Config, error) {
	// If file doesn't exist, return default config
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := defaultConfig()
	config.Groups = nil
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults if not specified
	if config.Theme == "" {
		config.Theme = "tokyo-night"
	}
	if len(config.Groups) == 0 {
		config.Groups = append([]string(nil), DefaultGroups...)
	}
	if config.Format == "" {
		config.Format = "auto"
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}

	return config, nil
}

// Validate checks the values that cannot be defaulted
func (c *Config) Validate() error {
	if c.DebounceMS < 0 {
		return fmt.Errorf("debounce_ms must not be negative, got %d", c.DebounceMS)
	}

	seen := make(map[string]bool, len(c.Groups))
	for _, g := range c.Groups {
		if g == "" {
			return fmt.Errorf("group labels must not be empty")
		}
		if seen[g] {
			return fmt.Errorf("group label %q listed twice", g)
		}
		seen[g] = true
	}

	switch c.Format {
	case "auto", "markdown", "tagged", "indented":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}

	return nil
}

// Debounce returns the input debounce delay
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	return &Config{
		Theme:  "tokyo-night",
		Groups: append([]string(nil), DefaultGroups...),
		Format: "auto",
	}
}

// GetConfigDir returns the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(home, ".config", "livefilter")
	return configDir, nil
}
