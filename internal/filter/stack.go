package filter

import "fmt"

// groupFrame is the bookkeeping for one open group level
type groupFrame struct {
	header       Item    // nil for levels skipped in the input
	flags        flagSet // terms satisfied by this group or one of its ancestors
	matchedChild bool    // something under this group is visible
}

// GroupStack tracks the groups that are open at the current position of a
// pass. Frames are preallocated, one per configured group level, and reused
// between pushes.
type GroupStack struct {
	frames  []groupFrame
	depth   int
	tracker *VisibilityTracker
}

// NewGroupStack creates a stack that can nest up to levels groups deep.
// Headers of popped groups with a visible descendant are shown through tracker.
func NewGroupStack(levels int, tracker *VisibilityTracker) *GroupStack {
	return &GroupStack{
		frames:  make([]groupFrame, levels),
		tracker: tracker,
	}
}

// Push opens a new group level. header may be nil for a level that has no
// header item in the list. The new level starts with its parent's flags.
func (s *GroupStack) Push(header Item) {
	if s.depth >= len(s.frames) {
		panic(fmt.Sprintf("filter: group stack overflow (depth %d, %d levels)", s.depth, len(s.frames)))
	}

	f := &s.frames[s.depth]
	f.header = header
	f.matchedChild = false
	if s.depth > 0 {
		f.flags.copyFrom(s.frames[s.depth-1].flags)
	} else {
		f.flags = f.flags[:0]
	}

	s.depth++
}

// Pop closes the innermost group. When something under it was visible, its
// header is shown and the parent group is marked as having a visible child.
func (s *GroupStack) Pop() {
	if s.depth == 0 {
		panic("filter: pop on empty group stack")
	}

	s.depth--
	f := &s.frames[s.depth]
	if f.matchedChild {
		s.tracker.SetVisible(f.header, true)
		s.SetMatchedChild()
	}
	f.header = nil
}

// SetFilterFlag records that term i was satisfied by the innermost open group
func (s *GroupStack) SetFilterFlag(i int) {
	if s.depth > 0 {
		s.frames[s.depth-1].flags.set(i)
	}
}

// CheckFilterFlag reports whether term i is already satisfied by the
// innermost open group or one of its ancestors
func (s *GroupStack) CheckFilterFlag(i int) bool {
	if s.depth == 0 {
		return false
	}
	return s.frames[s.depth-1].flags.has(i)
}

// SetMatchedChild marks the innermost open group as having a visible item
func (s *GroupStack) SetMatchedChild() {
	if s.depth > 0 {
		s.frames[s.depth-1].matchedChild = true
	}
}

// Depth returns the number of open groups
func (s *GroupStack) Depth() int {
	return s.depth
}

// Unwind pops every open group
func (s *GroupStack) Unwind() {
	for s.depth > 0 {
		s.Pop()
	}
}
