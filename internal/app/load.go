package app

import (
	"fmt"
	"slices"

	"github.com/pstuifzand/livefilter/internal/config"
	import_parser "github.com/pstuifzand/livefilter/internal/import"
	"github.com/pstuifzand/livefilter/internal/model"
)

// Source describes where the list comes from and how to read it
type Source struct {
	Path   string
	Format import_parser.ImportFormat // "" or auto: use config, then the extension
	Groups []string                   // overrides the configured group labels
}

// LoadList imports the list and works out the group labels to filter with
func LoadList(src Source, cfg *config.Config) (*model.List, []string, error) {
	format := src.Format
	if format == "" || format == import_parser.FormatAuto {
		format = import_parser.ImportFormat(cfg.Format)
	}
	if format == "" || format == import_parser.FormatAuto {
		format = import_parser.DetectFormat(src.Path)
	}

	list, err := import_parser.ImportFile(src.Path, format)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load list: %w", err)
	}

	return list, resolveGroups(format, list, src.Groups, cfg), nil
}

// resolveGroups picks explicit groups first. Indented text gets its level
// classes unless the config names its own groups.
func resolveGroups(format import_parser.ImportFormat, list *model.List, explicit []string, cfg *config.Config) []string {
	if len(explicit) > 0 {
		return explicit
	}
	if format == import_parser.FormatIndentedText && slices.Equal(cfg.Groups, config.DefaultGroups) {
		return import_parser.IndentGroups(list.MaxDepth())
	}
	return cfg.Groups
}
