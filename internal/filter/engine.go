package filter

import (
	"log"
	"time"
)

// Stats summarises one pass
type Stats struct {
	Items    int           // items scanned
	Visible  int           // items visible after the pass
	Groups   int           // group headers seen
	Terms    int           // non-empty query terms
	Duration time.Duration // time spent in the pass
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger logs a line per pass to logger
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTracer calls fn with the decision made for every item during a pass
func WithTracer(fn func(Decision)) Option {
	return func(e *Engine) {
		e.tracer = fn
	}
}

// Engine filters the items of a Source against a query. The group labels are
// fixed at construction; a label at position k is nested inside the label at
// position k-1.
//
// An Engine keeps no state between passes other than what it writes into the
// items, and must not be used by more than one goroutine at a time.
type Engine struct {
	groups  []string
	index   map[string]int
	source  Source
	tracker *VisibilityTracker
	logger  *log.Logger
	tracer  func(Decision)
}

// New creates an engine for the items of src. The restore display value is
// taken from the first item src returns now.
func New(groups []string, src Source, opts ...Option) *Engine {
	index := make(map[string]int, len(groups))
	for i, g := range groups {
		if _, dup := index[g]; !dup {
			index[g] = i
		}
	}

	e := &Engine{
		groups:  append([]string(nil), groups...),
		index:   index,
		source:  src,
		tracker: NewVisibilityTracker(src.Items()),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GroupIndex returns the nesting level of label, or -1 when label is not a
// group label
func (e *Engine) GroupIndex(label string) int {
	if label == "" {
		return -1
	}
	if i, ok := e.index[label]; ok {
		return i
	}
	return -1
}

// Groups returns the configured group labels
func (e *Engine) Groups() []string {
	return append([]string(nil), e.groups...)
}

// Run filters the current items of the source against query
func (e *Engine) Run(query string) Stats {
	start := time.Now()
	items := e.source.Items()
	terms := Tokenize(query)

	e.pass(items, terms, e.tracer)

	stats := Stats{
		Items:    len(items),
		Terms:    countTerms(terms),
		Duration: time.Since(start),
	}
	for _, item := range items {
		if IsVisible(item) {
			stats.Visible++
		}
		if e.GroupIndex(item.ClassLabel()) != -1 {
			stats.Groups++
		}
	}

	if e.logger != nil {
		e.logger.Printf("filter %q: %d/%d visible, %d groups, %s", query, stats.Visible, stats.Items, stats.Groups, stats.Duration)
	}
	return stats
}

// Explain runs a pass like Run and returns the decision made for every item
func (e *Engine) Explain(query string) []Decision {
	var decisions []Decision
	e.pass(e.source.Items(), Tokenize(query), func(d Decision) {
		decisions = append(decisions, d)
	})

	// Headers may have been shown by a descendant after their own decision
	for i := range decisions {
		decisions[i].Shown = IsVisible(decisions[i].Item)
	}
	return decisions
}

// pass scans items once and returns the (unwound) stack it used
func (e *Engine) pass(items []Item, terms []string, trace func(Decision)) *GroupStack {
	stack := NewGroupStack(len(e.groups), e.tracker)
	var m textMatcher

	for i, item := range items {
		groupIndex := e.GroupIndex(item.ClassLabel())

		if groupIndex != -1 {
			for stack.Depth() > groupIndex {
				stack.Pop()
			}
			for stack.Depth() < groupIndex {
				stack.Push(nil)
			}
			stack.Push(item)
		}

		var results []TermResult
		if trace != nil {
			results = make([]TermResult, 0, len(terms))
		}

		m.reset(item.TextContent())
		shouldShow := true
		for j, term := range terms {
			reason := ReasonMiss
			switch {
			case term == "":
				reason = ReasonEmpty
			case stack.CheckFilterFlag(j):
				reason = ReasonInherited
			case m.matches(term):
				reason = ReasonText
				if groupIndex != -1 {
					stack.SetFilterFlag(j)
				}
			}

			if trace != nil {
				results = append(results, TermResult{Term: term, Reason: reason})
			}
			if reason == ReasonMiss {
				shouldShow = false
				break
			}
		}

		e.tracker.SetVisible(item, shouldShow)

		if shouldShow {
			stack.SetMatchedChild()
		}

		if trace != nil {
			trace(Decision{
				Index:   i,
				Item:    item,
				Group:   groupIndex,
				Depth:   stack.Depth(),
				Visible: shouldShow,
				Terms:   results,
			})
		}
	}

	stack.Unwind()
	return stack
}
