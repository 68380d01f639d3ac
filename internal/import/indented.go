package import_parser

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pstuifzand/livefilter/internal/model"
)

// IndentedTextParser imports plain text files with indentation-based
// hierarchy. A line followed by a more deeply indented line is a group item
// with class "level<N>", N being its indentation level.
type IndentedTextParser struct{}

func (p *IndentedTextParser) Name() string {
	return "Indented Text"
}

// Parse converts indented text to a list
func (p *IndentedTextParser) Parse(content string) (*model.List, error) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	list := model.NewList()
	var prev *model.Item

	for scanner.Scan() {
		line := scanner.Text()

		// Skip empty lines
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}

		// 2 spaces = 1 level
		level := leadingIndent(line) / 2

		// The previous line has children, so it opens a group
		if prev != nil && level > prev.Depth {
			prev.Class = IndentClass(prev.Depth)
		}

		item := model.NewItem("", text)
		item.Depth = level
		list.Add(item)
		prev = item
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// IndentClass returns the class given to group items at indentation level
func IndentClass(level int) string {
	return fmt.Sprintf("level%d", level)
}

// IndentGroups returns the group labels for indented text up to maxLevel
func IndentGroups(maxLevel int) []string {
	groups := make([]string, 0, maxLevel+1)
	for i := 0; i <= maxLevel; i++ {
		groups = append(groups, IndentClass(i))
	}
	return groups
}
