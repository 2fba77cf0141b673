// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package suggest filters a cached candidate list against partial search
// terms. The list is fetched once per process; lookups are plain ordered
// scans (or trie walks in prefix mode) over the in-memory copy.
package suggest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/pdiddy/typeahead/internal/logger"
	"github.com/pdiddy/typeahead/internal/source"
	"github.com/pdiddy/typeahead/pkg/types"
)

// Catalog owns the candidate list and answers lookups against it. The list
// is loaded lazily on the first lookup, guarded by sync.Once so concurrent
// first calls perform exactly one fetch. A failed fetch leaves the catalog
// empty for the life of the process; the error is logged, never surfaced.
//
// Safe for concurrent use: all fields are written inside the Once and only
// read afterwards.
type Catalog struct {
	src  source.Source
	mode types.MatchMode
	log  *log.Logger

	once       sync.Once
	candidates []string
	folded     []string
	index      *patricia.Trie
}

// NewCatalog builds a catalog over the given source. The match mode is
// fixed at construction.
func NewCatalog(src source.Source, cfg types.MatchConfig) *Catalog {
	mode := cfg.Mode
	if mode == "" {
		mode = types.MatchSubstring
	}
	return &Catalog{
		src:  src,
		mode: mode,
		log:  logger.New("catalog"),
	}
}

// load fetches and prepares the candidate list exactly once.
func (c *Catalog) load(ctx context.Context) {
	c.once.Do(func() {
		candidates, err := c.src.Fetch(ctx)
		if err != nil {
			c.log.Error("candidate list fetch failed", "source", c.src.Name(), "err", err)
			return
		}

		c.candidates = candidates
		c.folded = make([]string, len(candidates))
		for i, cand := range candidates {
			c.folded[i] = Fold(cand)
		}
		if c.mode == types.MatchPrefix {
			c.index = buildIndex(c.folded)
		}
		c.log.Info("candidate list loaded", "source", c.src.Name(), "candidates", len(candidates))
	})
}

// Lookup returns candidates matching term, in candidate-list order, at most
// limit entries. A negative limit clamps to zero. An empty term, a zero
// limit, or an unloaded catalog all yield an empty result set.
func (c *Catalog) Lookup(ctx context.Context, term string, limit int) []types.Suggestion {
	if limit < 0 {
		limit = 0
	}
	c.load(ctx)

	if limit == 0 || term == "" || len(c.candidates) == 0 {
		return nil
	}

	folded := Fold(term)
	if c.mode == types.MatchPrefix && c.index != nil {
		return c.prefixLookup(folded, limit)
	}
	return c.substringLookup(folded, limit)
}

// substringLookup scans candidates in order, stopping at limit.
func (c *Catalog) substringLookup(folded string, limit int) []types.Suggestion {
	var matches []types.Suggestion
	for i, cand := range c.folded {
		if !strings.Contains(cand, folded) {
			continue
		}
		matches = append(matches, types.Suggestion{ID: int64(i), Text: c.candidates[i]})
		if len(matches) == limit {
			break
		}
	}
	return matches
}

// prefixLookup walks the word-start trie and re-sorts matches by candidate
// ID so both modes return a filtered view of the candidate list.
func (c *Catalog) prefixLookup(folded string, limit int) []types.Suggestion {
	seen := make(map[int64]struct{})
	var ids []int64
	c.index.VisitSubtree(patricia.Prefix(folded), func(_ patricia.Prefix, item patricia.Item) error {
		for _, id := range item.([]int64) {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
		return nil
	})

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) > limit {
		ids = ids[:limit]
	}

	matches := make([]types.Suggestion, len(ids))
	for i, id := range ids {
		matches[i] = types.Suggestion{ID: id, Text: c.candidates[id]}
	}
	return matches
}

// Size loads the catalog if needed and returns the candidate count.
func (c *Catalog) Size(ctx context.Context) int {
	c.load(ctx)
	return len(c.candidates)
}

// SourceName identifies the configured source.
func (c *Catalog) SourceName() string { return c.src.Name() }

// buildIndex inserts every word-start suffix of each folded candidate into
// a patricia trie. Items are candidate ID lists because distinct candidates
// can share a suffix.
func buildIndex(folded []string) *patricia.Trie {
	trie := patricia.NewTrie()
	for id, cand := range folded {
		for _, start := range wordStarts(cand) {
			key := patricia.Prefix(start)
			if item := trie.Get(key); item != nil {
				trie.Set(key, append(item.([]int64), int64(id)))
			} else {
				trie.Insert(key, []int64{int64(id)})
			}
		}
	}
	return trie
}
