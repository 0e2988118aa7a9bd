package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/LucasPin45/FiscalizaGov/internal/dou"
)

func sampleItems() []dou.Item {
	return []dou.Item{
		{Source: "DOU", Date: "01/05/2024", Section: "DO1", Title: "Decreto 1"},
		{Source: "DOU", Date: "01/05/2024", Section: "DO2", Title: "Portaria 2"},
	}
}

func TestGetMiss(t *testing.T) {
	m := NewMemory(time.Minute)
	if _, fresh := m.Get("2024-05-01|do1"); fresh {
		t.Error("expected miss on empty cache")
	}
}

func TestPutThenGet(t *testing.T) {
	m := NewMemory(time.Minute)
	m.Put("2024-05-01|do1,do2", sampleItems())

	got, fresh := m.Get("2024-05-01|do1,do2")
	if !fresh {
		t.Fatal("expected fresh entry within TTL")
	}
	if len(got) != 2 || got[0].Title != "Decreto 1" {
		t.Errorf("unexpected cached items: %+v", got)
	}
}

func TestExpiredEntryIsStale(t *testing.T) {
	m := NewMemory(time.Minute)
	m.Put("k", sampleItems())
	// Age the entry past the TTL by hand.
	m.entries["k"] = entry{items: m.entries["k"].items, at: time.Now().Add(-2 * time.Minute)}

	if _, fresh := m.Get("k"); fresh {
		t.Error("expected stale entry after TTL")
	}
}

func TestPutOverwrites(t *testing.T) {
	m := NewMemory(time.Minute)
	m.Put("k", sampleItems())
	m.Put("k", sampleItems()[:1])

	got, _ := m.Get("k")
	if len(got) != 1 {
		t.Errorf("expected overwrite, got %d items", len(got))
	}
}

func TestEmptyResultIsCached(t *testing.T) {
	// "Nothing found today" is a valid result and must not force a
	// refetch on the next call.
	m := NewMemory(time.Minute)
	m.Put("k", nil)
	if _, fresh := m.Get("k"); !fresh {
		t.Error("expected empty result to count as a fresh entry")
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		date     string
		sections []string
		want     string
	}{
		{"2024-05-01", []string{"do1", "do2", "do3"}, "2024-05-01|do1,do2,do3"},
		{"2024-05-01", []string{"do1"}, "2024-05-01|do1"},
		{"2024-05-02", []string{"do2", "do1"}, "2024-05-02|do2,do1"},
	}
	for _, tt := range tests {
		if got := Key(tt.date, tt.sections); got != tt.want {
			t.Errorf("Key(%q, %v) = %q, want %q", tt.date, tt.sections, got, tt.want)
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	m := NewMemory(time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Put("k", sampleItems())
			m.Get("k")
		}()
	}
	wg.Wait()

	if got, fresh := m.Get("k"); !fresh || len(got) != 2 {
		t.Errorf("expected consistent entry after concurrent writes, got fresh=%v len=%d", fresh, len(got))
	}
}

func TestNop(t *testing.T) {
	var s Store = Nop{}
	s.Put("k", sampleItems())
	if _, fresh := s.Get("k"); fresh {
		t.Error("Nop must never report a fresh entry")
	}
}
