package filter

import (
	"fmt"
	"strings"
)

// Reason tells how a single query term was resolved for an item
type Reason int

const (
	ReasonMiss      Reason = iota // term not found, item hidden
	ReasonEmpty                   // empty term, always passes
	ReasonInherited               // satisfied by an enclosing group
	ReasonText                    // found in the item's own text
)

func (r Reason) String() string {
	switch r {
	case ReasonMiss:
		return "miss"
	case ReasonEmpty:
		return "empty"
	case ReasonInherited:
		return "inherited"
	case ReasonText:
		return "text"
	default:
		return "unknown"
	}
}

// TermResult is the outcome of one term for one item
type TermResult struct {
	Term   string
	Reason Reason
}

// Decision records how an item was evaluated during a pass. Terms stops at the
// first miss. Visible is the item's own result; Shown is its state after the
// pass, which differs for group headers made visible by a descendant.
type Decision struct {
	Index   int
	Item    Item
	Group   int // group level, -1 for ordinary items
	Depth   int // open groups after the item was classified
	Visible bool
	Shown   bool
	Terms   []TermResult
}

// FormatDecision returns a one-line, human readable form of d
func FormatDecision(d Decision) string {
	var sb strings.Builder

	state := "hidden"
	if d.Visible {
		state = "shown"
	}
	if d.Shown && !d.Visible {
		state = "shown (child)"
	}

	indent := d.Depth
	if d.Group != -1 {
		indent--
	}
	sb.WriteString(strings.Repeat("  ", max(indent, 0)))

	if d.Group != -1 {
		fmt.Fprintf(&sb, "[%s] ", d.Item.ClassLabel())
	}
	fmt.Fprintf(&sb, "%q: %s", d.Item.TextContent(), state)

	var parts []string
	for _, t := range d.Terms {
		if t.Reason == ReasonEmpty {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%s", t.Term, t.Reason))
	}
	if len(parts) > 0 {
		sb.WriteString(" (")
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString(")")
	}

	return sb.String()
}
