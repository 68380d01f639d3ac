package import_parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pstuifzand/livefilter/internal/model"
)

// ImportFormat represents different file formats that can be imported
type ImportFormat string

const (
	FormatMarkdown     ImportFormat = "markdown"
	FormatTagged       ImportFormat = "tagged"
	FormatIndentedText ImportFormat = "indented"
	FormatAuto         ImportFormat = "auto" // Auto-detect from extension
)

// Parser interface for different import formats
type Parser interface {
	Parse(content string) (*model.List, error)
	Name() string
}

// Import parses content in the given format into a flat list
func Import(content string, format ImportFormat) (*model.List, error) {
	var parser Parser

	switch format {
	case FormatMarkdown:
		parser = &MarkdownParser{}
	case FormatTagged:
		parser = &TaggedParser{}
	case FormatIndentedText:
		parser = &IndentedTextParser{}
	default:
		return nil, fmt.Errorf("unsupported import format: %s", format)
	}

	list, err := parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse error (%s): %w", parser.Name(), err)
	}

	return list, nil
}

// ImportFile reads and parses a file. FormatAuto picks the format from the
// file extension.
func ImportFile(filePath string, format ImportFormat) (*model.List, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	if format == FormatAuto || format == "" {
		format = DetectFormat(filePath)
	}

	return Import(string(data), format)
}

// DetectFormat detects the file format from the extension
func DetectFormat(filename string) ImportFormat {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".tag", ".tagged":
		return FormatTagged
	}

	// Default to indented text
	return FormatIndentedText
}
