package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/livefilter/internal/theme"
)

// Screen manages the tcell screen and rendering
type Screen struct {
	tcellScreen tcell.Screen
	width       int
	height      int
	Theme       *theme.Theme
}

// NewScreen creates and initialises a terminal screen with the given theme
func NewScreen(t *theme.Theme) (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	return NewScreenWithTcell(tcellScreen, t)
}

// NewScreenWithTcell wraps an existing tcell screen, such as a simulation
// screen in tests, and initialises it
func NewScreenWithTcell(tcellScreen tcell.Screen, t *theme.Theme) (*Screen, error) {
	if err := tcellScreen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	if t == nil {
		t = theme.Default()
	}

	width, height := tcellScreen.Size()
	return &Screen{
		tcellScreen: tcellScreen,
		width:       width,
		height:      height,
		Theme:       t,
	}, nil
}

// Close closes the screen
func (s *Screen) Close() error {
	s.tcellScreen.Fini()
	return nil
}

// Clear clears the entire screen
func (s *Screen) Clear() {
	s.tcellScreen.Clear()
}

// SetCell sets a cell at the given position
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.tcellScreen.SetContent(x, y, r, nil, style)
	}
}

// DrawString draws a string at the given position and returns the column
// after the last rune drawn. Wide runes take two columns.
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		w := RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetCell(x, y, r, style)
		x += w
	}
	return x
}

// DrawStringLimited draws a string, truncating it with an ellipsis if it
// exceeds maxWidth columns
func (s *Screen) DrawStringLimited(x, y int, text string, maxWidth int, style tcell.Style) int {
	if maxWidth <= 0 {
		return x
	}
	return s.DrawString(x, y, TruncateToWidthWithEllipsis(text, maxWidth), style)
}

// PollEvent waits for the next event (key press, resize, posted event)
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// PostEvent queues an event for PollEvent. It fails when the queue is full.
func (s *Screen) PostEvent(ev tcell.Event) error {
	return s.tcellScreen.PostEvent(ev)
}

// Show shows the screen
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Sync refreshes the size after a resize event
func (s *Screen) Sync() {
	s.tcellScreen.Sync()
	s.width, s.height = s.tcellScreen.Size()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	s.width, s.height = s.tcellScreen.Size()
	return s.width, s.height
}

// ShowCursor places the terminal cursor; HideCursor removes it
func (s *Screen) ShowCursor(x, y int) {
	s.tcellScreen.ShowCursor(x, y)
}

func (s *Screen) HideCursor() {
	s.tcellScreen.HideCursor()
}

// Theme-aware styles

// ItemStyle returns the style for ordinary list items
func (s *Screen) ItemStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.ListItemText)
}

// GroupStyle returns the style for group header items
func (s *Screen) GroupStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.ListGroup).Bold(true)
}

// SelectedStyle returns the style for the selected item
func (s *Screen) SelectedStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.ListSelected).Reverse(true)
}

// EmptyStyle returns the style for the "no matches" placeholder
func (s *Screen) EmptyStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.ListEmpty).Dim(true)
}

// SearchLabelStyle returns the style for search label
func (s *Screen) SearchLabelStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.SearchLabel).Bold(true)
}

// SearchTextStyle returns the style for search text
func (s *Screen) SearchTextStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.SearchText)
}

// SearchCursorStyle returns the style for search cursor
func (s *Screen) SearchCursorStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.SearchCursor).Reverse(true)
}

// SearchResultCountStyle returns the style for search result count
func (s *Screen) SearchResultCountStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.SearchResultCount)
}

// StatusMessageStyle returns the style for status messages
func (s *Screen) StatusMessageStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.StatusMessage)
}

// StatusPendingStyle returns the style used while a query has not been applied yet
func (s *Screen) StatusPendingStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.StatusPending).Italic(true)
}
