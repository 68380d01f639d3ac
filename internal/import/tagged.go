package import_parser

import (
	"bufio"
	"strings"

	"github.com/pstuifzand/livefilter/internal/model"
)

// TaggedParser imports lines of the form "[class] text". Lines without a
// leading tag become items without class.
type TaggedParser struct{}

func (p *TaggedParser) Name() string {
	return "Tagged Text"
}

// Parse converts tagged lines to a list
func (p *TaggedParser) Parse(content string) (*model.List, error) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	list := model.NewList()

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		depth := leadingIndent(line) / 2
		class, text := parseTag(strings.TrimSpace(line))

		item := model.NewItem(class, text)
		item.Depth = depth
		list.Add(item)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// parseTag splits "[class] text" into its parts
func parseTag(line string) (class, text string) {
	if !strings.HasPrefix(line, "[") {
		return "", line
	}

	end := strings.IndexByte(line, ']')
	if end < 0 {
		return "", line
	}

	class = strings.TrimSpace(line[1:end])
	if class == "" || strings.ContainsAny(class, " \t") {
		return "", line
	}

	return class, strings.TrimSpace(line[end+1:])
}
