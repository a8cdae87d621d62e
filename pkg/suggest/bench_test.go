package suggest

import (
	"math/rand"
	"testing"

	"github.com/tchap/go-patricia/v2/patricia"
)

// benchPrefixes mimics common English word stems of varying length.
var benchPrefixes = []string{
	"imm", "ca", "di", "impe", "inter", "pre", "trans", "sub",
	"non", "un", "mid", "anti", "in", "re", "over",
}

func benchVocabulary(size int) []Suggestion {
	rng := rand.New(rand.NewSource(1))
	stems := []string{"im", "ca", "di", "in", "pre", "trans", "sub", "non", "un", "mid", "anti", "re", "over"}
	vocab := make([]Suggestion, 0, size)
	for i := 0; i < size; i++ {
		word := stems[rng.Intn(len(stems))]
		for j := 2 + rng.Intn(10); j > 0; j-- {
			word += string(rune('a' + rng.Intn(26)))
		}
		vocab = append(vocab, Suggestion{Word: word, Score: uint32(len(word))})
	}
	return vocab
}

func BenchmarkTrieSuggestions(b *testing.B) {
	trie := NewTrie(benchVocabulary(100000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		trie.Suggestions(benchPrefixes[i%len(benchPrefixes)])
	}
}

func BenchmarkNaiveSuggestions(b *testing.B) {
	naive := NewNaive(benchVocabulary(100000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		naive.Suggestions(benchPrefixes[i%len(benchPrefixes)])
	}
}

// Patricia baseline: subtree visit plus top-k selection, the way a library
// trie without per-node caches has to answer the same query.
func BenchmarkPatriciaSuggestions(b *testing.B) {
	ptrie := patricia.NewTrie()
	for _, s := range uniqueWords(benchVocabulary(100000)) {
		ptrie.Set(patricia.Prefix(s.Word), s.Score)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache := newTopK()
		_ = ptrie.VisitSubtree(patricia.Prefix(benchPrefixes[i%len(benchPrefixes)]), func(p patricia.Prefix, item patricia.Item) error {
			cache.add(&Suggestion{Word: string(p), Score: item.(uint32)})
			return nil
		})
		cache.sorted()
	}
}

func BenchmarkTrieBuild(b *testing.B) {
	vocab := benchVocabulary(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewTrie(vocab)
	}
}
