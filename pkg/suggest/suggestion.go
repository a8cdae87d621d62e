// Package suggest is the core, providing weighted prefix autocomplete through
// two interchangeable indexes: a compressed trie with per-node result caches,
// and a brute-force linear index kept as the reference baseline.
package suggest

import "strings"

// MaxSuggestions caps how many suggestions a query returns and how many
// entries each trie node caches. It is a policy value, not derived from the
// input.
const MaxSuggestions = 5

// Suggestion pairs a word with its popularity score. Suggestions are built
// once at index construction and never mutated, so the indexes share them
// freely by pointer.
type Suggestion struct {
	Word  string
	Score uint32
}

// Compare defines the total order used everywhere: score first, word as the
// tie-break, both ascending. Returns a negative value when a ranks below b,
// zero when they are equal, positive otherwise. Keeping a single comparator
// guarantees the trie and the naive index can never diverge in ranking.
func Compare(a, b *Suggestion) int {
	if a.Score != b.Score {
		if a.Score < b.Score {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Word, b.Word)
}

// Equal reports whether two suggestions carry the same word and score.
// Equality is deliberately consistent with Compare.
func (s *Suggestion) Equal(other *Suggestion) bool {
	return s.Score == other.Score && s.Word == other.Word
}

// Autocompleter is the single capability the indexes expose to callers.
type Autocompleter interface {
	// Suggestions returns at most MaxSuggestions entries for the given
	// prefix, ordered by descending score and descending word on ties.
	// Every prefix is legal; the empty prefix yields the global top entries.
	Suggestions(prefix string) []Suggestion
}
