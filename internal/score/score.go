// Package score computes heuristic risk scores for gazette items and
// ranks them for review.
package score

import (
	"sort"
	"strings"

	"github.com/LucasPin45/FiscalizaGov/internal/dou"
)

// trigger is one rule of the additive risk table.
type trigger struct {
	term   string
	points int
}

// triggers are evaluated in declaration order. Matching is raw
// case-insensitive substring, full phrases included, so "institui"
// alone does not fire "fica instituído".
var triggers = []trigger{
	{"imposto", 25},
	{"tribut", 25},
	{"contribui", 18},
	{"taxa", 18},
	{"benefício", 18},
	{"programa", 12},
	{"fica instituído", 22},
	{"fica criado", 22},
	{"regulamenta", 18},
	{"dispõe sobre", 12},
	{"autoriza", 15},
	{"estabelece", 10},
	{"prorroga", 8},
	{"excepcional", 10},
	{"em caráter", 10},
}

const (
	baseScore   = 10
	alertPoints = 12
	maxScore    = 100
	maxReasons  = 8
)

// RankedItem is a gazette item plus its risk score and the trail of
// rules that fired, in evaluation order, capped at 8 entries.
type RankedItem struct {
	dou.Item
	Score   int
	Reasons []string
}

// Rate scores one item against the trigger table and the caller's
// alert terms. Alert matches are labeled "match:<term>" to tell them
// apart from table triggers. The result is clamped to [0, 100].
func Rate(it dou.Item, alertTerms []string) RankedItem {
	text := strings.ToLower(it.SearchText())

	s := baseScore
	var reasons []string

	for _, tr := range triggers {
		if strings.Contains(text, tr.term) {
			s += tr.points
			reasons = append(reasons, tr.term)
		}
	}

	for _, term := range alertTerms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if strings.Contains(text, term) {
			s += alertPoints
			reasons = append(reasons, "match:"+term)
		}
	}

	if s > maxScore {
		s = maxScore
	}
	if s < 0 {
		s = 0
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	return RankedItem{Item: it, Score: s, Reasons: reasons}
}

// Rank scores every item and sorts by score descending, ties broken by
// date descending. The sort is stable: exact ties keep their input
// order.
func Rank(items []dou.Item, alertTerms []string) []RankedItem {
	ranked := make([]RankedItem, len(items))
	for i, it := range items {
		ranked[i] = Rate(it, alertTerms)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Date > ranked[j].Date
	})
	return ranked
}
