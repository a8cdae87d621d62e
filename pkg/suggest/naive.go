package suggest

import (
	"sort"
	"strings"
)

// Naive is the brute-force reference index: the whole vocabulary in one
// sorted slice, scanned per query. It is intentionally O(vocabulary size)
// and exists to validate and benchmark the trie, so it must rank, cap and
// tie-break identically.
type Naive struct {
	// ascending total order, exact duplicates removed
	sorted []*Suggestion
}

// NewNaive builds the reference index from the given vocabulary.
func NewNaive(vocab []Suggestion) *Naive {
	entries := make([]*Suggestion, 0, len(vocab))
	for _, s := range vocab {
		entries = append(entries, &Suggestion{Word: s.Word, Score: s.Score})
	}
	sort.Slice(entries, func(i, j int) bool {
		return Compare(entries[i], entries[j]) < 0
	})
	deduped := entries[:0]
	for _, s := range entries {
		if len(deduped) > 0 && Compare(deduped[len(deduped)-1], s) == 0 {
			continue
		}
		deduped = append(deduped, s)
	}
	return &Naive{sorted: deduped}
}

// Suggestions scans the backing slice in descending rank order, keeps the
// words starting with prefix and stops after MaxSuggestions matches.
func (na *Naive) Suggestions(prefix string) []Suggestion {
	out := make([]Suggestion, 0, MaxSuggestions)
	for i := len(na.sorted) - 1; i >= 0; i-- {
		if !strings.HasPrefix(na.sorted[i].Word, prefix) {
			continue
		}
		out = append(out, *na.sorted[i])
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}

// Words returns the number of distinct entries in the index.
func (na *Naive) Words() int {
	return len(na.sorted)
}
