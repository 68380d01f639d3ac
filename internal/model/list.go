// Package model contains the item list the filter operates on
package model

import "github.com/pstuifzand/livefilter/internal/filter"

const (
	// DisplayBlock is the display value freshly created items start with
	DisplayBlock = "block"
	// DisplayNone marks an item as hidden
	DisplayNone = "none"
)

// Item represents a single line in the list
type Item struct {
	Class   string `json:"class,omitempty"`
	Text    string `json:"text"`
	Depth   int    `json:"depth"` // Visual indentation, only used for rendering
	display string
}

// List is an ordered sequence of items, in document order
type List struct {
	Items []*Item `json:"items"`
}

// NewItem creates a new visible item
func NewItem(class, text string) *Item {
	return &Item{
		Class:   class,
		Text:    text,
		display: DisplayBlock,
	}
}

// NewList creates an empty list
func NewList() *List {
	return &List{
		Items: make([]*Item, 0),
	}
}

// ClassLabel returns the class label, or "" when the item has none
func (i *Item) ClassLabel() string {
	return i.Class
}

// TextContent returns the text payload matched against the query
func (i *Item) TextContent() string {
	return i.Text
}

// Display returns the current display value
func (i *Item) Display() string {
	return i.display
}

// SetDisplay sets the display value
func (i *Item) SetDisplay(display string) {
	i.display = display
}

// Visible reports whether the item is currently shown
func (i *Item) Visible() bool {
	return i.display != DisplayNone
}

// Add appends an item to the end of the list
func (l *List) Add(item *Item) {
	l.Items = append(l.Items, item)
}

// FilterItems returns the items as filter items. A fresh slice is built on every
// call so the engine always sees the current contents of the list.
func (l *List) FilterItems() []filter.Item {
	items := make([]filter.Item, len(l.Items))
	for i, item := range l.Items {
		items[i] = item
	}
	return items
}

// VisibleItems returns the items that are currently shown, in list order
func (l *List) VisibleItems() []*Item {
	var items []*Item
	for _, item := range l.Items {
		if item.Visible() {
			items = append(items, item)
		}
	}
	return items
}

// Len returns the number of items in the list
func (l *List) Len() int {
	return len(l.Items)
}

// MaxDepth returns the deepest item depth in the list
func (l *List) MaxDepth() int {
	depth := 0
	for _, item := range l.Items {
		depth = max(depth, item.Depth)
	}
	return depth
}
