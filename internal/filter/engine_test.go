package filter

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	class   string
	text    string
	display string
}

func (i *testItem) ClassLabel() string  { return i.class }
func (i *testItem) TextContent() string { return i.text }
func (i *testItem) Display() string     { return i.display }
func (i *testItem) SetDisplay(d string) { i.display = d }

// parseItems builds items from "class:text" entries; an entry without a colon is
// an item without class
func parseItems(entries ...string) []*testItem {
	items := make([]*testItem, len(entries))
	for i, entry := range entries {
		item := &testItem{display: "block"}
		if class, text, ok := strings.Cut(entry, ":"); ok {
			item.class = class
			item.text = text
		} else {
			item.text = entry
		}
		items[i] = item
	}
	return items
}

func sourceOf(items []*testItem) Source {
	return SourceFunc(func() []Item {
		out := make([]Item, len(items))
		for i, item := range items {
			out[i] = item
		}
		return out
	})
}

func visibility(items []*testItem) []bool {
	out := make([]bool, len(items))
	for i, item := range items {
		out[i] = item.display != "none"
	}
	return out
}

func TestEngineRun(t *testing.T) {
	tests := []struct {
		name   string
		groups []string
		items  []string
		query  string
		want   []bool
	}{
		{
			name:   "header match is inherited by children",
			groups: []string{"header"},
			items:  []string{"header:Fruits", "Apple", "Banana"},
			query:  "fruits",
			want:   []bool{true, true, true},
		},
		{
			name:   "header without visible children is hidden",
			groups: []string{"header"},
			items:  []string{"header:Veg", "Carrot", "Potato"},
			query:  "zzz",
			want:   []bool{false, false, false},
		},
		{
			name:   "header shown for a matching child",
			groups: []string{"header"},
			items:  []string{"header:Veg", "Carrot", "Potato"},
			query:  "carrot",
			want:   []bool{true, true, false},
		},
		{
			name:   "header flag does not leak to sibling group",
			groups: []string{"header"},
			items:  []string{"header:Alpha", "one", "header:Beta", "two", "alpha two"},
			query:  "alpha",
			want:   []bool{true, true, true, false, true},
		},
		{
			name:   "sibling group without match stays hidden",
			groups: []string{"header"},
			items:  []string{"header:Alpha", "one", "header:Beta", "two"},
			query:  "alpha",
			want:   []bool{true, true, false, false},
		},
		{
			name:   "all terms must match",
			groups: []string{"header"},
			items:  []string{"Red apple", "Green apple", "Red pepper"},
			query:  "apple red",
			want:   []bool{true, false, false},
		},
		{
			name:   "inherited and direct matches combine",
			groups: []string{"header"},
			items:  []string{"header:Fruits", "Red apple", "Green apple", "header:Veg", "Red pepper"},
			query:  "fruits red",
			want:   []bool{true, true, false, false, false},
		},
		{
			name:   "header matching itself stays visible without children",
			groups: []string{"header"},
			items:  []string{"header:Fruits", "header:Veg"},
			query:  "fruits",
			want:   []bool{true, false},
		},
		{
			name:   "all spaces shows everything",
			groups: []string{"header"},
			items:  []string{"header:Fruits", "Apple", "header:Veg"},
			query:  "  ",
			want:   []bool{true, true, true},
		},
		{
			name:   "empty query shows everything",
			groups: []string{"header"},
			items:  []string{"header:Fruits", "Apple"},
			query:  "",
			want:   []bool{true, true},
		},
		{
			name:   "unknown class is an ordinary item",
			groups: []string{"header"},
			items:  []string{"header:Fruits", "note:Apple", "Banana"},
			query:  "apple",
			want:   []bool{true, true, false},
		},
		{
			name:   "skipped level inherits from outer group",
			groups: []string{"h1", "h2", "h3"},
			items:  []string{"h1:Fruits", "h3:Tropical", "Mango"},
			query:  "fruits",
			want:   []bool{true, true, true},
		},
		{
			name:   "visibility bubbles through skipped level",
			groups: []string{"h1", "h2", "h3"},
			items:  []string{"h1:Fruits", "h3:Tropical", "Mango", "Kiwi"},
			query:  "mango",
			want:   []bool{true, true, true, false},
		},
		{
			name:   "nested header closes at same level",
			groups: []string{"h1", "h2"},
			items:  []string{"h1:Food", "h2:Fruits", "Apple", "h2:Veg", "Carrot", "h1:Drinks", "Water"},
			query:  "fruits",
			want:   []bool{true, true, true, false, false, false, false},
		},
		{
			name:   "outer match covers every nested group",
			groups: []string{"h1", "h2"},
			items:  []string{"h1:Food", "h2:Fruits", "Apple", "h2:Veg", "Carrot", "h1:Drinks", "Water"},
			query:  "food",
			want:   []bool{true, true, true, true, true, false, false},
		},
		{
			name:   "items before the first group",
			groups: []string{"h1"},
			items:  []string{"loose apple", "h1:Fruits", "Apple"},
			query:  "apple",
			want:   []bool{true, true, true},
		},
		{
			name:   "match is case insensitive",
			groups: []string{"header"},
			items:  []string{"header:FRUITS", "apple"},
			query:  "Fruits APPLE",
			want:   []bool{true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := parseItems(tt.items...)
			e := New(tt.groups, sourceOf(items))
			e.Run(tt.query)
			assert.Equal(t, tt.want, visibility(items), spew.Sdump(items))
		})
	}
}

func TestEngineRunIsIdempotent(t *testing.T) {
	items := parseItems("h1:Food", "h2:Fruits", "Apple", "h2:Veg", "Carrot", "h1:Drinks", "Water")
	e := New([]string{"h1", "h2"}, sourceOf(items))

	e.Run("fruits")
	first := visibility(items)
	e.Run("fruits")
	assert.Equal(t, first, visibility(items))
}

func TestEngineRunRestoresHiddenItems(t *testing.T) {
	items := parseItems("header:Fruits", "Apple", "Banana")
	e := New([]string{"header"}, sourceOf(items))

	e.Run("zzz")
	require.Equal(t, []bool{false, false, false}, visibility(items))

	e.Run("")
	assert.Equal(t, []bool{true, true, true}, visibility(items))
}

func TestEngineUsesFirstItemDisplay(t *testing.T) {
	items := parseItems("header:Fruits", "Apple")
	items[0].display = "list-item"
	items[1].display = "flex"
	e := New([]string{"header"}, sourceOf(items))

	e.Run("zzz")
	e.Run("")

	assert.Equal(t, "list-item", items[0].display)
	assert.Equal(t, "list-item", items[1].display)
}

func TestEngineEmptyList(t *testing.T) {
	e := New([]string{"header"}, sourceOf(nil))
	stats := e.Run("anything")
	assert.Zero(t, stats.Items)
	assert.Zero(t, stats.Visible)
}

func TestEngineStats(t *testing.T) {
	items := parseItems("header:Fruits", "Apple", "header:Veg", "Carrot")
	e := New([]string{"header"}, sourceOf(items))

	stats := e.Run("apple  x")
	assert.Equal(t, 4, stats.Items)
	assert.Equal(t, 0, stats.Visible)
	assert.Equal(t, 2, stats.Groups)
	assert.Equal(t, 2, stats.Terms)

	stats = e.Run("apple")
	assert.Equal(t, 2, stats.Visible)
}

func TestEngineSourceIsReadEveryPass(t *testing.T) {
	items := parseItems("header:Fruits", "Apple")
	e := New([]string{"header"}, SourceFunc(func() []Item {
		out := make([]Item, len(items))
		for i, item := range items {
			out[i] = item
		}
		return out
	}))

	e.Run("banana")
	assert.Equal(t, []bool{false, false}, visibility(items))

	items = append(items, parseItems("Banana")...)
	e.Run("banana")
	assert.Equal(t, []bool{true, false, true}, visibility(items))
}

func TestPassAlwaysUnwinds(t *testing.T) {
	tests := []struct {
		name  string
		items []string
	}{
		{"deepest level last", []string{"h1:a", "h2:b", "h3:c", "leaf"}},
		{"only skipped levels", []string{"h3:c", "leaf"}},
		{"no groups", []string{"one", "two"}},
		{"back to top", []string{"h3:c", "h1:a", "h2:b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := parseItems(tt.items...)
			e := New([]string{"h1", "h2", "h3"}, sourceOf(items))
			stack := e.pass(e.source.Items(), Tokenize("a"), nil)
			assert.Equal(t, 0, stack.Depth())
		})
	}
}

func TestGroupIndex(t *testing.T) {
	e := New([]string{"h1", "h2", "h1"}, sourceOf(nil))

	assert.Equal(t, 0, e.GroupIndex("h1"))
	assert.Equal(t, 1, e.GroupIndex("h2"))
	assert.Equal(t, -1, e.GroupIndex("h3"))
	assert.Equal(t, -1, e.GroupIndex(""))
}

func TestExplain(t *testing.T) {
	items := parseItems("header:Fruits", "Apple", "header:Veg", "Carrot")
	e := New([]string{"header"}, sourceOf(items))

	decisions := e.Explain("fruits  apple")
	require.Len(t, decisions, 4)

	fruits := decisions[0]
	assert.Equal(t, 0, fruits.Group)
	assert.False(t, fruits.Visible)
	assert.True(t, fruits.Shown)
	assert.Equal(t, []TermResult{
		{Term: "fruits", Reason: ReasonText},
		{Term: "", Reason: ReasonEmpty},
		{Term: "apple", Reason: ReasonMiss},
	}, fruits.Terms)

	apple := decisions[1]
	assert.Equal(t, -1, apple.Group)
	assert.True(t, apple.Visible)
	assert.Equal(t, ReasonInherited, apple.Terms[0].Reason)
	assert.Equal(t, ReasonText, apple.Terms[2].Reason)

	veg := decisions[2]
	assert.False(t, veg.Shown)
	assert.Len(t, veg.Terms, 1)

	assert.Equal(t, `[header] "Fruits": shown (child) (fruits=text, apple=miss)`, FormatDecision(fruits))
	assert.Equal(t, `  "Apple": shown (fruits=inherited, apple=text)`, FormatDecision(apple))
	assert.Equal(t, `[header] "Veg": hidden (fruits=miss)`, FormatDecision(veg))
}

func TestTracerSeesEveryItem(t *testing.T) {
	items := parseItems("header:Fruits", "Apple", "Banana")
	var seen []int
	e := New([]string{"header"}, sourceOf(items), WithTracer(func(d Decision) {
		seen = append(seen, d.Index)
	}))

	e.Run("apple")
	assert.Equal(t, []int{0, 1, 2}, seen)
}
