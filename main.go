package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pstuifzand/livefilter/internal/app"
	"github.com/pstuifzand/livefilter/internal/config"
	"github.com/pstuifzand/livefilter/internal/export"
	import_parser "github.com/pstuifzand/livefilter/internal/import"
)

func main() {
	logFile, err := os.Create("livefilter.log")
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	debug := flag.Bool("debug", false, "Show filter pass statistics in the status line")
	format := flag.String("format", "", "Input format: markdown, tagged, indented or auto")
	groups := flag.String("groups", "", "Comma separated group class labels, outermost first")
	query := flag.String("query", "", "Filter once, print the visible items and exit")
	output := flag.String("output", "text", "Output format for -query: text, markdown, json or jsonl")
	explain := flag.Bool("explain", false, "With -query, print why each item is shown or hidden")
	configPath := flag.String("config", "", "Config file (default ~/.config/livefilter/config.toml)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] FILE\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src := app.Source{
		Path:   args[0],
		Format: import_parser.ImportFormat(*format),
		Groups: splitGroups(*groups),
	}
	list, groupLabels, err := app.LoadList(src, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("loaded %d items from %s, groups %v", list.Len(), src.Path, groupLabels)

	// Batch mode
	if isFlagSet("query") || *explain {
		outFormat, err := export.ParseOutputFormat(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		if err := app.RunBatch(os.Stdout, list, groupLabels, *query, outFormat, *explain); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	application, err := app.NewApp(filepath.Base(src.Path), list, groupLabels, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *debug {
		application.SetDebugMode(true)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// splitGroups parses the -groups flag
func splitGroups(s string) []string {
	var groups []string
	for _, g := range strings.Split(s, ",") {
		if g = strings.TrimSpace(g); g != "" {
			groups = append(groups, g)
		}
	}
	return groups
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
