// Package filter retains gazette items matching user-supplied keywords.
package filter

import (
	"strings"

	"github.com/LucasPin45/FiscalizaGov/internal/dou"
)

// Keep returns the items whose title, summary or agency contains at
// least one keyword as a case-insensitive literal substring. Keywords
// are trimmed first; empty ones are ignored, and an empty list after
// trimming disables filtering entirely. Input order is preserved.
func Keep(items []dou.Item, keywords []string) []dou.Item {
	terms := cleanTerms(keywords)
	if len(terms) == 0 {
		return items
	}

	var out []dou.Item
	for _, it := range items {
		blob := strings.ToLower(it.SearchText())
		for _, term := range terms {
			if strings.Contains(blob, term) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

func cleanTerms(keywords []string) []string {
	var terms []string
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			terms = append(terms, k)
		}
	}
	return terms
}
