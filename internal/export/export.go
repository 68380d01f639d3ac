package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pstuifzand/livefilter/internal/model"
)

// OutputFormat specifies how the visible items are written
type OutputFormat string

const (
	OutputFormatText     OutputFormat = "text"
	OutputFormatMarkdown OutputFormat = "markdown"
	OutputFormatJSON     OutputFormat = "json"
	OutputFormatJSONL    OutputFormat = "jsonl"
)

// ParseOutputFormat validates a format name
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(name)); f {
	case OutputFormatText, OutputFormatMarkdown, OutputFormatJSON, OutputFormatJSONL:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", name)
}

// WriteVisible writes the visible items of list to w. isGroup tells which
// class labels are group labels; those items are written as headings.
func WriteVisible(w io.Writer, list *model.List, format OutputFormat, isGroup func(string) bool) error {
	items := list.VisibleItems()

	switch format {
	case OutputFormatText:
		return writeText(w, items)
	case OutputFormatMarkdown:
		return writeMarkdown(w, items, isGroup)
	case OutputFormatJSON:
		return writeJSON(w, items)
	case OutputFormatJSONL:
		return writeJSONL(w, items)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeText writes one line per item, indented 2 spaces per depth level
func writeText(w io.Writer, items []*model.Item) error {
	for _, item := range items {
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", item.Depth), item.Text); err != nil {
			return err
		}
	}
	return nil
}

// writeMarkdown writes group items as headings and the rest as bullets
// indented relative to the last heading
func writeMarkdown(w io.Writer, items []*model.Item, isGroup func(string) bool) error {
	var sb strings.Builder
	headingDepth := 0
	headingLevel := 0

	for _, item := range items {
		if item.Class != "" && isGroup != nil && isGroup(item.Class) {
			headingLevel = min(item.Depth+1, 6)
			headingDepth = item.Depth + 1
			sb.WriteString(strings.Repeat("#", headingLevel))
			sb.WriteString(" ")
			sb.WriteString(item.Text)
			sb.WriteString("\n")
			continue
		}

		// Skip empty items
		if strings.TrimSpace(item.Text) == "" {
			continue
		}

		indent := strings.Repeat("  ", max(item.Depth-headingDepth, 0))
		sb.WriteString(indent)
		sb.WriteString("- ")
		sb.WriteString(item.Text)
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeJSON(w io.Writer, items []*model.Item) error {
	if items == nil {
		items = []*model.Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

func writeJSONL(w io.Writer, items []*model.Item) error {
	enc := json.NewEncoder(w)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return fmt.Errorf("failed to encode item: %w", err)
		}
	}
	return nil
}
