package suggest

import (
	"math/rand"
	"sort"
	"testing"
)

func TestTopKBelowCapacity(t *testing.T) {
	cache := newTopK()
	cache.add(&Suggestion{"carpet", 2})
	cache.add(&Suggestion{"car", 1})
	cache.add(&Suggestion{"carpenter", 3})

	got := cache.sorted()
	want := []string{"carpenter", "carpet", "car"}
	assertWords(t, want, got)
}

func TestTopKEviction(t *testing.T) {
	cache := newTopK()
	for _, s := range []Suggestion{
		{"car", 1}, {"carpet", 2}, {"carpenter", 3}, {"cocoon", 5}, {"cain", 3},
	} {
		cache.add(&Suggestion{s.Word, s.Score})
	}
	// full cache: a higher-ranked candidate displaces the minimum ("car")
	cache.add(&Suggestion{"ball", 4})
	assertWords(t, []string{"cocoon", "ball", "carpenter", "cain", "carpet"}, cache.sorted())

	// a candidate at or below the new minimum is dropped
	cache.add(&Suggestion{"ant", 1})
	assertWords(t, []string{"cocoon", "ball", "carpenter", "cain", "carpet"}, cache.sorted())
}

func TestTopKDuplicatesAbsorbed(t *testing.T) {
	cache := newTopK()
	cache.add(&Suggestion{"car", 1})
	cache.add(&Suggestion{"car", 1})
	if cache.len() != 1 {
		t.Fatalf("duplicate entry kept, len = %d", cache.len())
	}
	// same word with a different score is a distinct entry
	cache.add(&Suggestion{"car", 7})
	if cache.len() != 2 {
		t.Fatalf("distinct score collapsed, len = %d", cache.len())
	}
}

func TestTopKCloneIndependence(t *testing.T) {
	orig := newTopK()
	orig.add(&Suggestion{"ball", 4})
	orig.add(&Suggestion{"baller", 5})

	seeded := orig.clone()
	seeded.add(&Suggestion{"bald", 9})

	assertWords(t, []string{"baller", "ball"}, orig.sorted())
	assertWords(t, []string{"bald", "baller", "ball"}, seeded.sorted())
}

// A clone of a correct cache followed by further adds must stay the exact
// top set of the union, the inductive step the trie split relies on.
func TestTopKSeededCloneStaysCorrect(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		var all []*Suggestion
		cache := newTopK()
		for i := 0; i < 8; i++ {
			s := randomSuggestion(rng)
			all = append(all, s)
			cache.add(s)
		}
		seeded := cache.clone()
		for i := 0; i < 4; i++ {
			s := randomSuggestion(rng)
			all = append(all, s)
			seeded.add(s)
		}
		assertWords(t, bruteForceTop(all), seeded.sorted())
	}
}

func randomSuggestion(rng *rand.Rand) *Suggestion {
	words := []string{"car", "carpet", "cocoon", "ball", "baller", "cain", "cameo", "ant"}
	return &Suggestion{Word: words[rng.Intn(len(words))], Score: uint32(rng.Intn(6))}
}

// bruteForceTop computes the expected top words by full sort + dedup.
func bruteForceTop(all []*Suggestion) []string {
	uniq := make([]*Suggestion, 0, len(all))
	for _, s := range all {
		dup := false
		for _, u := range uniq {
			if Compare(s, u) == 0 {
				dup = true
				break
			}
		}
		if !dup {
			uniq = append(uniq, s)
		}
	}
	sort.Slice(uniq, func(i, j int) bool { return Compare(uniq[i], uniq[j]) > 0 })
	if len(uniq) > MaxSuggestions {
		uniq = uniq[:MaxSuggestions]
	}
	words := make([]string, len(uniq))
	for i, s := range uniq {
		words[i] = s.Word
	}
	return words
}

func assertWords(t *testing.T, want []string, got []Suggestion) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d suggestions %v, want %d %v", len(got), wordsOf(got), len(want), want)
	}
	for i := range want {
		if got[i].Word != want[i] {
			t.Fatalf("suggestion %d = %q, want %q (full: %v vs %v)", i, got[i].Word, want[i], wordsOf(got), want)
		}
	}
}

func wordsOf(suggestions []Suggestion) []string {
	words := make([]string, len(suggestions))
	for i, s := range suggestions {
		words[i] = s.Word
	}
	return words
}
