package theme

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration
type ThemeConfig struct {
	Name   string `toml:"name"`
	Colors struct {
		ListItemText      string `toml:"list_item_text"`
		ListGroup         string `toml:"list_group"`
		ListSelected      string `toml:"list_selected"`
		ListEmpty         string `toml:"list_empty"`
		SearchLabel       string `toml:"search_label"`
		SearchText        string `toml:"search_text"`
		SearchCursor      string `toml:"search_cursor"`
		SearchResultCount string `toml:"search_result_count"`
		StatusMessage     string `toml:"status_message"`
		StatusPending     string `toml:"status_pending"`
	} `toml:"colors"`
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	return []string{
		filepath.Join(home, ".config", "livefilter", "themes"),
		filepath.Join(home, ".local", "share", "livefilter", "themes"),
	}
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config), nil
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme converts a ThemeConfig to a Theme, with fallback to Tokyo Night for missing colors
func configToTheme(config ThemeConfig) *Theme {
	t := TokyoNight()

	set := func(dst *tcell.Color, value string) {
		if value != "" {
			*dst = ParseColorString(value)
		}
	}

	c := config.Colors
	set(&t.Colors.ListItemText, c.ListItemText)
	set(&t.Colors.ListGroup, c.ListGroup)
	set(&t.Colors.ListSelected, c.ListSelected)
	set(&t.Colors.ListEmpty, c.ListEmpty)
	set(&t.Colors.SearchLabel, c.SearchLabel)
	set(&t.Colors.SearchText, c.SearchText)
	set(&t.Colors.SearchCursor, c.SearchCursor)
	set(&t.Colors.SearchResultCount, c.SearchResultCount)
	set(&t.Colors.StatusMessage, c.StatusMessage)
	set(&t.Colors.StatusPending, c.StatusPending)

	if config.Name != "" {
		t.Name = config.Name
	}

	return t
}

// LoadThemeOrDefault loads a theme by name, or returns Tokyo Night if not found
func LoadThemeOrDefault(themeName string) *Theme {
	switch themeName {
	case "default":
		return Default()
	case "", "tokyo-night":
		return TokyoNight()
	}

	theme, err := LoadTheme(themeName)
	if err != nil {
		log.Printf("theme %q: %v, using tokyo-night", themeName, err)
		return TokyoNight()
	}

	return theme
}
