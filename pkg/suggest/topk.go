package suggest

import "sort"

// topK is a bounded ordered set holding the best suggestions offered so far.
// Entries are kept sorted ascending, so entries[0] is always the current
// minimum and eviction never needs a scan. Each trie node owns one.
type topK struct {
	entries []*Suggestion
}

func newTopK() *topK {
	return &topK{entries: make([]*Suggestion, 0, MaxSuggestions)}
}

// add offers a suggestion to the cache. Below capacity it is always kept.
// At capacity the current minimum is evicted only for a strictly
// higher-ranked candidate; anything else cannot belong to a correct top set
// and is dropped. Exact duplicates (Compare == 0) are absorbed, so both
// indexes behave as ordered sets.
func (t *topK) add(s *Suggestion) {
	i := sort.Search(len(t.entries), func(i int) bool {
		return Compare(t.entries[i], s) >= 0
	})
	if i < len(t.entries) && Compare(t.entries[i], s) == 0 {
		return
	}
	if len(t.entries) == MaxSuggestions {
		if i == 0 {
			// ranks below the cached minimum
			return
		}
		copy(t.entries[:i-1], t.entries[1:i])
		t.entries[i-1] = s
		return
	}
	t.entries = append(t.entries, nil)
	copy(t.entries[i+1:], t.entries[i:])
	t.entries[i] = s
}

// sorted returns the cached suggestions best-first: descending score, then
// descending word among equal scores.
func (t *topK) sorted() []Suggestion {
	out := make([]Suggestion, 0, len(t.entries))
	for i := len(t.entries) - 1; i >= 0; i-- {
		out = append(out, *t.entries[i])
	}
	return out
}

// clone returns an independent copy. A clone seeded from a correct cache
// stays correct through further adds: one new candidate can displace at most
// the single lowest-ranked member.
func (t *topK) clone() *topK {
	c := newTopK()
	c.entries = append(c.entries, t.entries...)
	return c
}

func (t *topK) len() int {
	return len(t.entries)
}
