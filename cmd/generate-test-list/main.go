package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	numItems := flag.Int("items", 1000, "Number of items to generate")
	output := flag.String("output", "large_test.md", "Output file path")
	depth := flag.Int("depth", 3, "Number of heading levels (1-6)")
	flag.Parse()

	if *numItems < 1 {
		fmt.Fprintf(os.Stderr, "items must be at least 1\n")
		os.Exit(1)
	}
	if *depth < 1 || *depth > 6 {
		fmt.Fprintf(os.Stderr, "depth must be between 1 and 6\n")
		os.Exit(1)
	}

	content, headings := generateList(*numItems, *depth)

	// Ensure directory exists
	dir := filepath.Dir(*output)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create directory: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.WriteFile(*output, []byte(content), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated list with %d items (%d headings)\n", *numItems, headings)
	fmt.Printf("Saved to: %s\n", *output)
	fmt.Printf("File size: %.2f MB\n", float64(len(content))/(1024*1024))
}

// generateList writes totalItems markdown lines: headings nested up to
// maxDepth levels, each followed by a few bullets
func generateList(totalItems int, maxDepth int) (string, int) {
	var sb strings.Builder
	remaining := totalItems
	headings := 0

	for remaining > 0 {
		headings += generateSection(&sb, &remaining, 1, maxDepth)
	}

	return sb.String(), headings
}

func generateSection(sb *strings.Builder, remaining *int, level int, maxDepth int) int {
	if *remaining <= 0 {
		return 0
	}

	fmt.Fprintf(sb, "%s %s\n", strings.Repeat("#", level), generateUniqueText(*remaining))
	*remaining--
	headings := 1

	for i := 0; i < getBulletCount(*remaining) && *remaining > 0; i++ {
		fmt.Fprintf(sb, "- %s\n", generateUniqueText(*remaining))
		*remaining--
	}

	if level < maxDepth {
		for i := 0; i < getSubsectionCount(*remaining) && *remaining > 0; i++ {
			headings += generateSection(sb, remaining, level+1, maxDepth)
		}
	}

	return headings
}

func getBulletCount(remaining int) int {
	if remaining > 10 {
		return 5
	}
	return remaining / 2
}

func getSubsectionCount(remaining int) int {
	// Internal levels: create 2-3 sections
	if remaining > 50 {
		return 3
	}
	return 2
}

func generateUniqueText(index int) string {
	categories := []string{
		"Task", "Note", "Idea", "Bug", "Feature", "Enhancement",
		"Documentation", "Refactor", "Test", "Optimization",
		"Research", "Design", "Implementation", "Review",
	}

	category := categories[index%len(categories)]
	return fmt.Sprintf("%s #%d - %s", category, index,
		generateDescription(index))
}

func generateDescription(index int) string {
	descriptions := []string{
		"Core functionality",
		"User interface",
		"Performance improvement",
		"Bug fix",
		"New capability",
		"API integration",
		"Data validation",
		"Error handling",
		"Caching layer",
		"Database schema",
		"Authentication",
		"Configuration",
		"Logging system",
		"Monitoring",
		"Security audit",
	}

	return descriptions[index%len(descriptions)]
}
