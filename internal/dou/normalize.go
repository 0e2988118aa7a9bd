package dou

import "strings"

// normalizeText trims and collapses every internal run of whitespace to
// a single space.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalize cleans every text field and drops records left with no
// usable content (title, summary and link all empty). Input order is
// preserved.
func normalize(items []Item) []Item {
	var out []Item
	for _, it := range items {
		it.Agency = normalizeText(it.Agency)
		it.Title = normalizeText(it.Title)
		it.Summary = normalizeText(it.Summary)
		it.Link = normalizeText(it.Link)

		if it.Title == "" && it.Summary == "" && it.Link == "" {
			continue
		}
		out = append(out, it)
	}
	return out
}
