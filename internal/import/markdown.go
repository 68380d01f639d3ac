package import_parser

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pstuifzand/livefilter/internal/model"
)

// MarkdownParser imports markdown files. Headings become group items with
// class h1 to h6, everything else becomes an ordinary item.
type MarkdownParser struct{}

func (p *MarkdownParser) Name() string {
	return "Markdown"
}

// Parse converts markdown content to a list
func (p *MarkdownParser) Parse(content string) (*model.List, error) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	list := model.NewList()
	headingDepth := 0 // Depth of items under the last heading

	for scanner.Scan() {
		line := scanner.Text()

		// Skip empty lines
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Check for header
		if strings.HasPrefix(line, "#") {
			if level, text := parseHeader(line); level >= 0 {
				item := model.NewItem(fmt.Sprintf("h%d", level+1), text)
				item.Depth = level
				list.Add(item)
				headingDepth = level + 1
				continue
			}
		}

		// Check for unordered list item
		if listLevel, text := parseListItem(line); listLevel >= 0 {
			item := model.NewItem("", text)
			item.Depth = headingDepth + listLevel
			list.Add(item)
			continue
		}

		// Plain text
		item := model.NewItem("", strings.TrimSpace(line))
		item.Depth = headingDepth
		list.Add(item)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// parseHeader extracts the 0-based level and text from a markdown header
func parseHeader(line string) (level int, text string) {
	level = 0
	for i := 0; i < len(line) && line[i] == '#'; i++ {
		level++
	}

	if level == 0 || level > 6 {
		return -1, ""
	}

	// "#tag" is text, not a heading
	if level < len(line) && line[level] != ' ' && line[level] != '\t' {
		return -1, ""
	}

	text = strings.TrimSpace(line[level:])
	return level - 1, text
}

// parseListItem extracts indentation level and text from list item
func parseListItem(line string) (level int, text string) {
	indent := leadingIndent(line)
	trimmed := strings.TrimSpace(line)

	// Check for list markers
	if len(trimmed) > 2 && (trimmed[0] == '-' || trimmed[0] == '*' || trimmed[0] == '+') && trimmed[1] == ' ' {
		text = strings.TrimSpace(trimmed[2:])
		return indent / 2, text // 2 spaces per level
	}

	return -1, ""
}

// leadingIndent counts leading spaces, a tab counts as 2
func leadingIndent(line string) int {
	indent := 0
	for i := 0; i < len(line); i++ {
		if line[i] == ' ' {
			indent++
		} else if line[i] == '\t' {
			indent += 2
		} else {
			break
		}
	}
	return indent
}
