package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/livefilter/internal/model"
)

func sampleList() *model.List {
	list := model.NewList()
	add := func(class, text string, depth int, visible bool) {
		item := model.NewItem(class, text)
		item.Depth = depth
		if !visible {
			item.SetDisplay(model.DisplayNone)
		}
		list.Add(item)
	}
	add("h1", "Fruits", 0, true)
	add("", "Apple", 1, true)
	add("", "Banana", 1, false)
	add("h2", "Tropical", 1, true)
	add("", "Mango", 2, true)
	add("h1", "Veg", 0, false)
	return list
}

func isHeading(class string) bool {
	return class == "h1" || class == "h2"
}

func TestWriteVisibleText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVisible(&buf, sampleList(), OutputFormatText, isHeading))
	assert.Equal(t, "Fruits\n  Apple\n  Tropical\n    Mango\n", buf.String())
}

func TestWriteVisibleMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVisible(&buf, sampleList(), OutputFormatMarkdown, isHeading))
	assert.Equal(t, "# Fruits\n- Apple\n## Tropical\n- Mango\n", buf.String())
}

func TestWriteVisibleJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVisible(&buf, sampleList(), OutputFormatJSON, isHeading))
	assert.Contains(t, buf.String(), `"text": "Mango"`)
	assert.NotContains(t, buf.String(), "Banana")

	buf.Reset()
	require.NoError(t, WriteVisible(&buf, model.NewList(), OutputFormatJSON, isHeading))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteVisibleJSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVisible(&buf, sampleList(), OutputFormatJSONL, isHeading))
	assert.Equal(t, `{"class":"h1","text":"Fruits","depth":0}
{"text":"Apple","depth":1}
{"class":"h2","text":"Tropical","depth":1}
{"text":"Mango","depth":2}
`, buf.String())
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("JSONL")
	require.NoError(t, err)
	assert.Equal(t, OutputFormatJSONL, f)

	_, err = ParseOutputFormat("xml")
	assert.Error(t, err)
}
