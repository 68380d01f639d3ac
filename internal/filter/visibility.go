package filter

const (
	displayNone    = "none"
	displayDefault = "block"
)

// VisibilityTracker shows and hides items by switching their display value.
//
// Every item that is shown again gets the same restore value, taken from the
// first item when the tracker was created. Items that started out with a
// different display value lose it once they have been hidden.
type VisibilityTracker struct {
	restore string
}

// NewVisibilityTracker creates a tracker whose restore value is the display
// value of the first item, or "block" when there is no usable one.
func NewVisibilityTracker(items []Item) *VisibilityTracker {
	restore := displayDefault
	if len(items) > 0 && items[0] != nil {
		if d := items[0].Display(); d != displayNone {
			restore = d
		}
	}
	return &VisibilityTracker{restore: restore}
}

// SetVisible shows or hides item. Items already in the requested state are
// left alone. A nil item is ignored.
func (t *VisibilityTracker) SetVisible(item Item, visible bool) {
	if item == nil {
		return
	}

	if visible {
		if item.Display() == displayNone {
			item.SetDisplay(t.restore)
		}
		return
	}

	if item.Display() != displayNone {
		item.SetDisplay(displayNone)
	}
}

// Restore returns the display value used for showing items
func (t *VisibilityTracker) Restore() string {
	return t.restore
}

// IsVisible reports whether item is shown
func IsVisible(item Item) bool {
	return item != nil && item.Display() != displayNone
}
