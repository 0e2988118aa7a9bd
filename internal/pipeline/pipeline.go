// Package pipeline wires collection, caching, filtering and ranking
// into the single run both the interactive and scheduled drivers share.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/LucasPin45/FiscalizaGov/internal/cache"
	"github.com/LucasPin45/FiscalizaGov/internal/dou"
	"github.com/LucasPin45/FiscalizaGov/internal/filter"
	"github.com/LucasPin45/FiscalizaGov/internal/score"
)

// Collector fetches normalized gazette items for one date.
type Collector interface {
	Collect(ctx context.Context, date time.Time, sections []string) []dou.Item
}

// Options are the caller-supplied inputs for one run. The pipeline has
// no configuration of its own.
type Options struct {
	Date       time.Time
	Sections   []string
	Keywords   []string
	AlertTerms []string
	Refresh    bool // bypass the result cache for this run
}

type Pipeline struct {
	collector Collector
	store     cache.Store
}

func New(collector Collector, store cache.Store) *Pipeline {
	if store == nil {
		store = cache.Nop{}
	}
	return &Pipeline{collector: collector, store: store}
}

// Run executes collect, filter and rank for one date. Collection
// results are memoized per (date, sections); a fresh cache entry skips
// the network entirely. An empty result is not an error. The only error
// is a request with no sections at all.
func (p *Pipeline) Run(ctx context.Context, opts Options) ([]score.RankedItem, error) {
	if len(opts.Sections) == 0 {
		return nil, errors.New("no sections requested")
	}

	key := cache.Key(opts.Date.Format("2006-01-02"), opts.Sections)
	items, fresh := p.store.Get(key)
	if !fresh || opts.Refresh {
		items = p.collector.Collect(ctx, opts.Date, opts.Sections)
		p.store.Put(key, items)
	}

	items = filter.Keep(items, opts.Keywords)
	return score.Rank(items, opts.AlertTerms), nil
}
