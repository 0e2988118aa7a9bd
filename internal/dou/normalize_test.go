package dou

import (
	"strings"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Decreto  nº  11.000  ", "Decreto nº 11.000"},
		{"linha\n\tquebrada", "linha quebrada"},
		{"simples", "simples"},
		{"   ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeText(tt.input); got != tt.want {
			t.Errorf("normalizeText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeFields(t *testing.T) {
	items := normalize([]Item{{
		Title:   "  Portaria \t 15 ",
		Summary: "Dispõe  sobre\n\nprazos",
		Agency:  " Ministério   da Fazenda ",
		Link:    " https://example.org/15 ",
	}})

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]
	for _, field := range []string{it.Title, it.Summary, it.Agency, it.Link} {
		if field != strings.TrimSpace(field) {
			t.Errorf("field has leading/trailing whitespace: %q", field)
		}
		if strings.Contains(field, "  ") || strings.ContainsAny(field, "\n\t") {
			t.Errorf("field has uncollapsed whitespace: %q", field)
		}
	}
	if it.Summary != "Dispõe sobre prazos" {
		t.Errorf("unexpected summary: %q", it.Summary)
	}
}

func TestNormalizeDropsEmptyRecords(t *testing.T) {
	items := normalize([]Item{
		{Title: "  ", Summary: "\n", Agency: "Ministério X", Link: ""},
		{Title: "Com título"},
		{Summary: "Com ementa"},
		{Link: "https://example.org/doc"},
	})

	if len(items) != 3 {
		t.Fatalf("expected the all-empty record dropped, got %d items", len(items))
	}
	// Agency alone does not keep a record alive.
	for _, it := range items {
		if it.Title == "" && it.Summary == "" && it.Link == "" {
			t.Errorf("empty record survived: %+v", it)
		}
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	items := normalize([]Item{
		{Title: "primeiro"},
		{Title: "segundo"},
		{Title: "terceiro"},
	})
	want := []string{"primeiro", "segundo", "terceiro"}
	for i, w := range want {
		if items[i].Title != w {
			t.Errorf("position %d: got %q, want %q", i, items[i].Title, w)
		}
	}
}
