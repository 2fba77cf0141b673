// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pdiddy/typeahead/pkg/types"
)

// fakeSource counts fetches so tests can assert the fetch-once property.
type fakeSource struct {
	candidates []string
	err        error
	calls      int32
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Fetch(_ context.Context) ([]string, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

var cities = []string{"Santos", "São Paulo", "Sorocaba"}

func newTestCatalog(mode types.MatchMode) (*Catalog, *fakeSource) {
	src := &fakeSource{candidates: cities}
	return NewCatalog(src, types.MatchConfig{Mode: mode}), src
}

func TestLookupSubstring(t *testing.T) {
	c, _ := newTestCatalog(types.MatchSubstring)

	got := c.Lookup(context.Background(), "sa", 10)
	if len(got) != 2 {
		t.Fatalf("Lookup(sa) = %v, want 2 results", got)
	}
	if got[0].Text != "Santos" || got[0].ID != 0 {
		t.Errorf("got[0] = %+v, want Santos with ID 0", got[0])
	}
	if got[1].Text != "São Paulo" || got[1].ID != 1 {
		t.Errorf("got[1] = %+v, want São Paulo with ID 1", got[1])
	}
}

func TestLookupNoMatch(t *testing.T) {
	c, _ := newTestCatalog(types.MatchSubstring)
	if got := c.Lookup(context.Background(), "xyz", 10); len(got) != 0 {
		t.Errorf("Lookup(xyz) = %v, want empty", got)
	}
}

func TestLookupLimit(t *testing.T) {
	tests := []struct {
		name  string
		term  string
		limit int
		want  int
	}{
		{"limit truncates", "sa", 1, 1},
		{"limit above matches", "sa", 10, 2},
		{"zero limit", "sa", 0, 0},
		{"negative limit clamps to zero", "sa", -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCatalog(types.MatchSubstring)
			got := c.Lookup(context.Background(), tt.term, tt.limit)
			if len(got) != tt.want {
				t.Errorf("Lookup(%q, %d) returned %d results, want %d", tt.term, tt.limit, len(got), tt.want)
			}
		})
	}
}

func TestLookupEmptyTerm(t *testing.T) {
	c, _ := newTestCatalog(types.MatchSubstring)
	if got := c.Lookup(context.Background(), "", 10); len(got) != 0 {
		t.Errorf("Lookup(\"\") = %v, want empty", got)
	}
}

func TestLookupCaseAndDiacritics(t *testing.T) {
	c, _ := newTestCatalog(types.MatchSubstring)

	if got := c.Lookup(context.Background(), "SOR", 10); len(got) != 1 || got[0].Text != "Sorocaba" {
		t.Errorf("Lookup(SOR) = %v, want [Sorocaba]", got)
	}
	// Accented term matches unaccented candidate text and vice versa.
	if got := c.Lookup(context.Background(), "são", 10); len(got) != 1 || got[0].Text != "São Paulo" {
		t.Errorf("Lookup(são) = %v, want [São Paulo]", got)
	}
	if got := c.Lookup(context.Background(), "sao", 10); len(got) != 1 || got[0].Text != "São Paulo" {
		t.Errorf("Lookup(sao) = %v, want [São Paulo]", got)
	}
}

func TestLookupFetchOnce(t *testing.T) {
	c, src := newTestCatalog(types.MatchSubstring)

	c.Lookup(context.Background(), "sa", 10)
	c.Lookup(context.Background(), "so", 10)
	c.Lookup(context.Background(), "xyz", 10)

	if n := atomic.LoadInt32(&src.calls); n != 1 {
		t.Errorf("source fetched %d times, want 1", n)
	}
}

func TestLookupFetchOnceConcurrent(t *testing.T) {
	c, src := newTestCatalog(types.MatchSubstring)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Lookup(context.Background(), "sa", 10)
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt32(&src.calls); n != 1 {
		t.Errorf("source fetched %d times under concurrent first calls, want 1", n)
	}
}

func TestLookupFetchFailure(t *testing.T) {
	src := &fakeSource{err: fmt.Errorf("connection refused")}
	c := NewCatalog(src, types.MatchConfig{})

	if got := c.Lookup(context.Background(), "sa", 10); len(got) != 0 {
		t.Errorf("Lookup after failed fetch = %v, want empty", got)
	}
	// The failure is cached too: no refetch on later lookups.
	c.Lookup(context.Background(), "so", 10)
	if n := atomic.LoadInt32(&src.calls); n != 1 {
		t.Errorf("source fetched %d times after failure, want 1", n)
	}
}

func TestLookupPrefixMode(t *testing.T) {
	c, _ := newTestCatalog(types.MatchPrefix)

	// Word-start match inside a multi-word candidate.
	if got := c.Lookup(context.Background(), "pau", 10); len(got) != 1 || got[0].Text != "São Paulo" {
		t.Fatalf("Lookup(pau) = %v, want [São Paulo]", got)
	}

	// All candidates start with s; order must follow the candidate list.
	got := c.Lookup(context.Background(), "s", 10)
	if len(got) != 3 {
		t.Fatalf("Lookup(s) = %v, want 3 results", got)
	}
	for i, want := range cities {
		if got[i].Text != want || got[i].ID != int64(i) {
			t.Errorf("got[%d] = %+v, want %q with ID %d", i, got[i], want, i)
		}
	}

	// Prefix mode does not match mid-word substrings.
	if got := c.Lookup(context.Background(), "aulo", 10); len(got) != 0 {
		t.Errorf("Lookup(aulo) = %v, want empty in prefix mode", got)
	}

	if got := c.Lookup(context.Background(), "s", 2); len(got) != 2 {
		t.Errorf("Lookup(s, 2) returned %d results, want 2", len(got))
	}
}

func TestLookupResultsContainTerm(t *testing.T) {
	c, _ := newTestCatalog(types.MatchSubstring)
	for _, term := range []string{"s", "o", "ca", "santos"} {
		for _, s := range c.Lookup(context.Background(), term, 10) {
			if !strings.Contains(Fold(s.Text), Fold(term)) {
				t.Errorf("Lookup(%q) returned %q which does not contain the term", term, s.Text)
			}
		}
	}
}

func TestCatalogSize(t *testing.T) {
	c, src := newTestCatalog(types.MatchSubstring)
	if got := c.Size(context.Background()); got != 3 {
		t.Errorf("Size = %d, want 3", got)
	}
	if n := atomic.LoadInt32(&src.calls); n != 1 {
		t.Errorf("source fetched %d times, want 1", n)
	}
}
