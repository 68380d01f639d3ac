package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateList(t *testing.T) {
	content, headings := generateList(200, 3)
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	assert.Len(t, lines, 200)

	counted := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			counted++
			assert.False(t, strings.HasPrefix(line, "####"), "deeper than 3 levels: %s", line)
		} else {
			assert.True(t, strings.HasPrefix(line, "- "), line)
		}
	}
	assert.Equal(t, headings, counted)
	assert.True(t, strings.HasPrefix(lines[0], "# "))
}
