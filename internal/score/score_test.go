package score

import (
	"strings"
	"testing"

	"github.com/LucasPin45/FiscalizaGov/internal/dou"
)

func TestRateBaseScore(t *testing.T) {
	r := Rate(dou.Item{Title: "Aviso de pauta"}, nil)
	if r.Score != 10 {
		t.Errorf("expected base score 10 with no triggers, got %d", r.Score)
	}
	if len(r.Reasons) != 0 {
		t.Errorf("expected no reasons, got %v", r.Reasons)
	}
}

func TestRateSingleTrigger(t *testing.T) {
	r := Rate(dou.Item{Title: "Decreto institui novo imposto", Agency: "Ministério X"}, nil)
	if r.Score != 35 {
		t.Errorf("expected 10 + 25 (imposto) = 35, got %d", r.Score)
	}
	if len(r.Reasons) != 1 || r.Reasons[0] != "imposto" {
		t.Errorf("expected reasons [imposto], got %v", r.Reasons)
	}
}

func TestRatePhraseRequiresExactSubstring(t *testing.T) {
	// "institui" must not fire the "fica instituído" phrase trigger.
	r := Rate(dou.Item{Title: "Decreto institui novo programa"}, nil)
	for _, reason := range r.Reasons {
		if reason == "fica instituído" {
			t.Errorf("phrase trigger fired without exact substring: %v", r.Reasons)
		}
	}

	r = Rate(dou.Item{Summary: "Fica instituído o programa"}, nil)
	found := false
	for _, reason := range r.Reasons {
		if reason == "fica instituído" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected phrase trigger to fire, got %v", r.Reasons)
	}
}

func TestRateCaseInsensitive(t *testing.T) {
	r := Rate(dou.Item{Title: "FICA CRIADO O CONSELHO"}, nil)
	if r.Score != 32 {
		t.Errorf("expected 10 + 22 (fica criado) = 32, got %d", r.Score)
	}
}

func TestRateAlertTerms(t *testing.T) {
	r := Rate(dou.Item{Title: "Portaria sobre servidores", Agency: "INSS"}, []string{"INSS", "", "  "})
	if r.Score != 22 {
		t.Errorf("expected 10 + 12 (alert) = 22, got %d", r.Score)
	}
	if len(r.Reasons) != 1 || r.Reasons[0] != "match:inss" {
		t.Errorf("expected alert reason prefixed with match:, got %v", r.Reasons)
	}
}

func TestRateClampedAt100(t *testing.T) {
	// Every trigger present at once blows well past 100.
	text := "imposto tributário contribuição taxa benefício programa fica instituído " +
		"fica criado regulamenta dispõe sobre autoriza estabelece prorroga excepcional em caráter"
	r := Rate(dou.Item{Summary: text}, []string{"imposto", "taxa"})
	if r.Score != 100 {
		t.Errorf("expected clamp at 100, got %d", r.Score)
	}
}

func TestRateReasonsCappedAtEight(t *testing.T) {
	text := "imposto tribut contribui taxa benefício programa fica instituído fica criado regulamenta"
	r := Rate(dou.Item{Summary: text}, nil)
	if len(r.Reasons) != 8 {
		t.Fatalf("expected reasons capped at 8, got %d: %v", len(r.Reasons), r.Reasons)
	}
	// Evaluation order: table-declaration order survives the cap.
	want := []string{"imposto", "tribut", "contribui", "taxa", "benefício", "programa", "fica instituído", "fica criado"}
	for i, w := range want {
		if r.Reasons[i] != w {
			t.Errorf("reason %d: got %q, want %q", i, r.Reasons[i], w)
		}
	}
}

func TestRateScoreAlwaysInRange(t *testing.T) {
	items := []dou.Item{
		{},
		{Title: "imposto"},
		{Summary: strings.Repeat("imposto tribut taxa ", 50)},
	}
	for _, it := range items {
		r := Rate(it, []string{"imposto", "tribut", "taxa", "x", "y"})
		if r.Score < 0 || r.Score > 100 {
			t.Errorf("score out of range: %d for %+v", r.Score, it)
		}
	}
}

func TestRankByScoreDescending(t *testing.T) {
	items := []dou.Item{
		{Title: "Aviso comum", Date: "01/05/2024"},
		{Title: "Decreto cria imposto e taxa", Date: "01/05/2024"},
		{Title: "Portaria regulamenta prazos", Date: "01/05/2024"},
	}
	ranked := Rank(items, nil)
	if ranked[0].Title != "Decreto cria imposto e taxa" {
		t.Errorf("expected highest score first, got %q", ranked[0].Title)
	}
	if ranked[2].Title != "Aviso comum" {
		t.Errorf("expected lowest score last, got %q", ranked[2].Title)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("ranking not descending at %d: %d > %d", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
}

func TestRankStableOnTies(t *testing.T) {
	items := []dou.Item{
		{Title: "Primeiro aviso", Date: "01/05/2024"},
		{Title: "Segundo aviso", Date: "01/05/2024"},
		{Title: "Terceiro aviso", Date: "01/05/2024"},
	}
	ranked := Rank(items, nil)
	want := []string{"Primeiro aviso", "Segundo aviso", "Terceiro aviso"}
	for i, w := range want {
		if ranked[i].Title != w {
			t.Errorf("tie order broken at %d: got %q, want %q", i, ranked[i].Title, w)
		}
	}
}

func TestRankTieBrokenByDate(t *testing.T) {
	items := []dou.Item{
		{Title: "Antigo", Date: "01/05/2024"},
		{Title: "Recente", Date: "02/05/2024"},
	}
	ranked := Rank(items, nil)
	if ranked[0].Title != "Recente" {
		t.Errorf("expected newer date first on equal scores, got %q", ranked[0].Title)
	}
}

func TestRankEmpty(t *testing.T) {
	if ranked := Rank(nil, nil); len(ranked) != 0 {
		t.Errorf("expected empty ranking, got %d", len(ranked))
	}
}
