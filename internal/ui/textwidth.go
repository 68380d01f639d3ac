package ui

import (
	"github.com/mattn/go-runewidth"
)

// Widths are display widths in screen columns, not byte or rune counts.

// RuneWidth returns the display width of a single rune. Control and combining
// characters are 0 wide, CJK and emoji 2.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}

// StringWidth returns the display width of a string
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateToWidth truncates s to fit within maxWidth columns without
// splitting a rune
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	width := 0
	for i, r := range s {
		rw := RuneWidth(r)
		if width+rw > maxWidth {
			return s[:i]
		}
		width += rw
	}
	return s
}

// TruncateToWidthWithEllipsis truncates s with "..." if it exceeds maxWidth
func TruncateToWidthWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return TruncateToWidth(s, maxWidth)
	}
	if StringWidth(s) <= maxWidth {
		return s
	}
	return TruncateToWidth(s, maxWidth-3) + "..."
}

// WordBoundaryIndex returns the rune index of the previous (next=false) or
// following (next=true) word start, seen from rune position pos
func WordBoundaryIndex(runes []rune, pos int, next bool) int {
	pos = max(0, min(pos, len(runes)))

	if next {
		i := pos
		for i < len(runes) && runes[i] != ' ' {
			i++
		}
		for i < len(runes) && runes[i] == ' ' {
			i++
		}
		return i
	}

	i := pos
	for i > 0 && runes[i-1] == ' ' {
		i--
	}
	for i > 0 && runes[i-1] != ' ' {
		i--
	}
	return i
}
