package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/LucasPin45/FiscalizaGov/internal/dou"
)

// DefaultTTL bounds how long a collected result is served from memory
// before the upstream is hit again.
const DefaultTTL = 30 * time.Minute

// Store memoizes collected results per (date, sections) request.
// Implementations must be safe for concurrent callers.
type Store interface {
	// Get returns the cached items and whether the entry is still fresh.
	Get(key string) ([]dou.Item, bool)
	// Put stores the items for key, replacing any previous entry.
	Put(key string, items []dou.Item)
}

// Key builds the cache key for one request. Section order is
// significant: callers pass sections in the order they want them
// fetched, and a reordered request is a different run.
func Key(date string, sections []string) string {
	return date + "|" + strings.Join(sections, ",")
}

type entry struct {
	items []dou.Item
	at    time.Time
}

// Memory is a process-wide in-memory TTL cache. Entries expire but are
// never persisted; a restart always starts cold. Concurrent callers
// missing on the same key may both fetch and both Put; the second
// write wins, which is fine because collection is idempotent.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

func (m *Memory) Get(key string) ([]dou.Item, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok || time.Since(e.at) >= m.ttl {
		return nil, false
	}
	return e.items, true
}

func (m *Memory) Put(key string, items []dou.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry{items: items, at: time.Now()}
}

// Nop caches nothing. One-shot drivers use it so every invocation hits
// the upstream exactly once.
type Nop struct{}

func (Nop) Get(string) ([]dou.Item, bool) { return nil, false }
func (Nop) Put(string, []dou.Item)        {}
