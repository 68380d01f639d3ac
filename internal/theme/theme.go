package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the theme
type Colors struct {
	// List view colors
	ListItemText tcell.Color
	ListGroup    tcell.Color
	ListSelected tcell.Color
	ListEmpty    tcell.Color

	// Search bar colors
	SearchLabel       tcell.Color
	SearchText        tcell.Color
	SearchCursor      tcell.Color
	SearchResultCount tcell.Color

	// Status line colors
	StatusMessage tcell.Color
	StatusPending tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// Default returns a default theme using terminal defaults
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Colors{
			ListItemText:      tcell.ColorDefault,
			ListGroup:         tcell.ColorDefault,
			ListSelected:      tcell.ColorDefault,
			ListEmpty:         tcell.ColorDefault,
			SearchLabel:       tcell.ColorDefault,
			SearchText:        tcell.ColorDefault,
			SearchCursor:      tcell.ColorDefault,
			SearchResultCount: tcell.ColorDefault,
			StatusMessage:     tcell.ColorDefault,
			StatusPending:     tcell.ColorDefault,
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	text := HexToColor("#c0caf5") // Light gray-blue
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			ListItemText:      text,
			ListGroup:         HexToColor("#bb9af7"), // Magenta
			ListSelected:      HexToColor("#7aa2f7"), // Blue
			ListEmpty:         HexToColor("#565f89"), // Comment gray
			SearchLabel:       HexToColor("#bb9af7"), // Magenta
			SearchText:        text,
			SearchCursor:      HexToColor("#7aa2f7"), // Blue
			SearchResultCount: HexToColor("#9ece6a"), // Green
			StatusMessage:     HexToColor("#9ece6a"), // Green
			StatusPending:     Blend("#9ece6a", "#1a1b26", 0.5),
		},
	}
}
