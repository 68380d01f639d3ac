package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// SearchBar is the single-line query editor at the top of the screen
type SearchBar struct {
	query     []rune
	cursorPos int // rune index into query
}

// NewSearchBar creates an empty search bar
func NewSearchBar() *SearchBar {
	return &SearchBar{}
}

// Query returns the current text
func (s *SearchBar) Query() string {
	return string(s.query)
}

// SetQuery replaces the text and moves the cursor to its end
func (s *SearchBar) SetQuery(q string) {
	s.query = []rune(q)
	s.cursorPos = len(s.query)
}

// Clear empties the search bar
func (s *SearchBar) Clear() {
	s.query = s.query[:0]
	s.cursorPos = 0
}

// CursorPos returns the cursor position in runes
func (s *SearchBar) CursorPos() int {
	return s.cursorPos
}

// HandleKey applies an editing key. It returns true when the query text
// changed, false for cursor movement and keys it does not handle.
func (s *SearchBar) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if s.cursorPos > 0 {
			s.query = append(s.query[:s.cursorPos-1], s.query[s.cursorPos:]...)
			s.cursorPos--
			return true
		}
	case tcell.KeyDelete:
		if s.cursorPos < len(s.query) {
			s.query = append(s.query[:s.cursorPos], s.query[s.cursorPos+1:]...)
			return true
		}
	case tcell.KeyCtrlW:
		start := WordBoundaryIndex(s.query, s.cursorPos, false)
		if start < s.cursorPos {
			s.query = append(s.query[:start], s.query[s.cursorPos:]...)
			s.cursorPos = start
			return true
		}
	case tcell.KeyCtrlU:
		if s.cursorPos > 0 {
			s.query = append(s.query[:0], s.query[s.cursorPos:]...)
			s.cursorPos = 0
			return true
		}
	case tcell.KeyLeft:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			s.cursorPos = WordBoundaryIndex(s.query, s.cursorPos, false)
		} else if s.cursorPos > 0 {
			s.cursorPos--
		}
	case tcell.KeyRight:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			s.cursorPos = WordBoundaryIndex(s.query, s.cursorPos, true)
		} else if s.cursorPos < len(s.query) {
			s.cursorPos++
		}
	case tcell.KeyHome, tcell.KeyCtrlA:
		s.cursorPos = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		s.cursorPos = len(s.query)
	case tcell.KeyRune:
		ch := ev.Rune()
		if ch < ' ' {
			return false
		}
		s.query = append(s.query[:s.cursorPos], append([]rune{ch}, s.query[s.cursorPos:]...)...)
		s.cursorPos++
		return true
	}
	return false
}

// Draw renders the bar on row y with the result count right-aligned
func (s *SearchBar) Draw(screen *Screen, y int, visible, total int, pending bool) {
	width, _ := screen.Size()

	x := screen.DrawString(0, y, "Filter: ", screen.SearchLabelStyle())
	start := x
	x = screen.DrawString(x, y, string(s.query), screen.SearchTextStyle())

	cursorX := start + StringWidth(string(s.query[:s.cursorPos]))
	if s.cursorPos < len(s.query) {
		screen.SetCell(cursorX, y, s.query[s.cursorPos], screen.SearchCursorStyle())
	} else {
		screen.SetCell(cursorX, y, ' ', screen.SearchCursorStyle())
	}

	count := fmt.Sprintf("%d/%d", visible, total)
	style := screen.SearchResultCountStyle()
	if pending {
		count = "... " + count
		style = screen.StatusPendingStyle()
	}
	if cx := width - StringWidth(count); cx > x+1 {
		screen.DrawString(cx, y, count, style)
	}
}
