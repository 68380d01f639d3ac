package app

import (
	"fmt"
	"io"
	"log"

	"github.com/pstuifzand/livefilter/internal/export"
	"github.com/pstuifzand/livefilter/internal/filter"
	"github.com/pstuifzand/livefilter/internal/model"
)

// RunBatch applies query to list once and writes the result to w. With
// explain set, the decision for every item is written instead.
func RunBatch(w io.Writer, list *model.List, groups []string, query string, format export.OutputFormat, explain bool) error {
	engine := filter.New(groups, filter.SourceFunc(list.FilterItems))

	if explain {
		for _, d := range engine.Explain(query) {
			if _, err := fmt.Fprintln(w, filter.FormatDecision(d)); err != nil {
				return err
			}
		}
		return nil
	}

	stats := engine.Run(query)
	log.Printf("batch %q: %d/%d visible", query, stats.Visible, stats.Items)

	isGroup := func(class string) bool {
		return engine.GroupIndex(class) != -1
	}
	if err := export.WriteVisible(w, list, format, isGroup); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}
