package filter

import "strings"

// Tokenize splits a raw query into lowercase terms on single spaces. Empty
// terms are kept so every term keeps a stable position; they match anything.
func Tokenize(query string) []string {
	return strings.Split(strings.ToLower(query), " ")
}

// countTerms returns the number of non-empty terms
func countTerms(terms []string) int {
	n := 0
	for _, t := range terms {
		if t != "" {
			n++
		}
	}
	return n
}
