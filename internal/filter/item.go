// Package filter implements the group-aware live filter: a single pass over an
// ordered item list that hides items not matching every query term, where
// group headers pass their matches down to the items nested under them and
// are themselves shown only while something under them is shown.
package filter

// Item is one entry of the filtered list as seen by the engine
type Item interface {
	// ClassLabel returns the item's class, "" when it has none
	ClassLabel() string
	// TextContent returns the text the query terms are matched against
	TextContent() string
	// Display returns the current display value, "none" when hidden
	Display() string
	SetDisplay(display string)
}

// Source supplies the items of a list in document order. It is asked again on
// every pass, so it may return a different sequence each time.
type Source interface {
	Items() []Item
}

// SourceFunc adapts a function to the Source interface
type SourceFunc func() []Item

// Items calls f
func (f SourceFunc) Items() []Item {
	return f()
}
