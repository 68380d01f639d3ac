package ui

import (
	"strings"

	"github.com/pstuifzand/livefilter/internal/model"
)

// ListView shows the visible items of a list with a movable selection
type ListView struct {
	list     *model.List
	isGroup  func(class string) bool
	visible  []*model.Item
	selected int // index into visible
	offset   int // first visible row drawn
}

// NewListView creates a view on list. isGroup tells which classes are group
// headers, which are drawn in the group style.
func NewListView(list *model.List, isGroup func(class string) bool) *ListView {
	lv := &ListView{
		list:    list,
		isGroup: isGroup,
	}
	lv.Refresh()
	return lv
}

// Refresh re-reads item visibility after a filter pass, keeping the selected
// item selected if it is still visible
func (lv *ListView) Refresh() {
	current := lv.Selected()
	lv.visible = lv.list.VisibleItems()

	lv.selected = 0
	for i, item := range lv.visible {
		if item == current {
			lv.selected = i
			break
		}
	}
}

// Visible returns the items currently shown
func (lv *ListView) Visible() []*model.Item {
	return lv.visible
}

// Selected returns the selected item, or nil when nothing is visible
func (lv *ListView) Selected() *model.Item {
	if lv.selected < 0 || lv.selected >= len(lv.visible) {
		return nil
	}
	return lv.visible[lv.selected]
}

// MoveSelection moves the selection by delta rows, clamped to the list
func (lv *ListView) MoveSelection(delta int) {
	if len(lv.visible) == 0 {
		lv.selected = 0
		return
	}
	lv.selected = max(0, min(lv.selected+delta, len(lv.visible)-1))
}

// Draw renders rows top..top+height-1
func (lv *ListView) Draw(screen *Screen, top, height int) {
	if height <= 0 {
		return
	}
	width, _ := screen.Size()

	if len(lv.visible) == 0 {
		screen.DrawString(2, top, "No matching items", screen.EmptyStyle())
		return
	}

	// Keep the selection on screen
	if lv.selected < lv.offset {
		lv.offset = lv.selected
	}
	if lv.selected >= lv.offset+height {
		lv.offset = lv.selected - height + 1
	}
	lv.offset = max(0, min(lv.offset, len(lv.visible)-1))

	for row := 0; row < height && lv.offset+row < len(lv.visible); row++ {
		idx := lv.offset + row
		item := lv.visible[idx]

		style := screen.ItemStyle()
		marker := "  "
		if lv.isGroup != nil && item.Class != "" && lv.isGroup(item.Class) {
			style = screen.GroupStyle()
			marker = "▸ "
		}
		if idx == lv.selected {
			style = screen.SelectedStyle()
		}

		indent := strings.Repeat("  ", item.Depth)
		line := indent + marker + item.Text
		screen.DrawStringLimited(0, top+row, line, width, style)
	}
}
