package filter

import "strings"

// Matches reports whether text contains term, ignoring case. An empty term
// matches everything.
func Matches(text, term string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}

// textMatcher caches the lowercased text of the item being evaluated so a
// multi-term query lowercases it only once.
type textMatcher struct {
	text    string
	lowered string
	ready   bool
}

func (m *textMatcher) reset(text string) {
	m.text = text
	m.ready = false
}

// matches expects term to be lowercase already, as produced by Tokenize
func (m *textMatcher) matches(term string) bool {
	if !m.ready {
		m.lowered = strings.ToLower(m.text)
		m.ready = true
	}
	return strings.Contains(m.lowered, term)
}
