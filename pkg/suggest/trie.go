package suggest

// node is a compressed trie node. edges is keyed by the first byte of each
// outgoing label; no two edges of one node may share a first byte, and no
// label may be empty. terminal is set iff an inserted word ends exactly here.
// top caches the best suggestions found anywhere in this node's subtree,
// terminal included.
type node struct {
	edges    map[byte]*edge
	terminal *Suggestion
	top      *topK
}

// edge carries a label fragment of one or more bytes and exclusively owns
// its child node.
type edge struct {
	label string
	child *node
}

func newNode() *node {
	return &node{
		edges: make(map[byte]*edge),
		top:   newTopK(),
	}
}

// Trie is the primary index: a radix tree over the vocabulary where every
// node on an insertion path caches the top suggestions below it. A query
// therefore costs the walk of the prefix plus a fixed-size copy, independent
// of vocabulary size. The trie is built once and read-only afterwards; it is
// safe for concurrent readers but not for concurrent insertion.
type Trie struct {
	root  *node
	words int
}

// NewTrie builds a trie from the given vocabulary. Input order is
// irrelevant and duplicate words are allowed.
func NewTrie(vocab []Suggestion) *Trie {
	t := &Trie{root: newNode()}
	for _, s := range vocab {
		t.Insert(s.Word, s.Score)
	}
	return t
}

// Insert adds a word with its score. Any word, including the empty string,
// always succeeds.
func (t *Trie) Insert(word string, score uint32) {
	if insertAt(t.root, word, &Suggestion{Word: word, Score: score}) {
		t.words++
	}
}

// insertAt reports whether s is a new entry, i.e. not an exact duplicate of
// one inserted before.
func insertAt(n *node, rest string, s *Suggestion) bool {
	// every node on the path learns about the suggestion; this is what makes
	// query-time cache reads O(1)
	n.top.add(s)
	if len(rest) == 0 {
		if n.terminal != nil && Compare(n.terminal, s) == 0 {
			return false
		}
		n.terminal = s
		return true
	}
	c := rest[0]
	e, ok := n.edges[c]
	if !ok {
		leaf := newNode()
		leaf.top.add(s)
		leaf.terminal = s
		n.edges[c] = &edge{label: rest, child: leaf}
		return true
	}
	m := commonPrefixLen(e.label, rest)
	if m == len(e.label) {
		return insertAt(e.child, rest[m:], s)
	}
	// the word forks off inside the label: split the edge there. The
	// intermediate node inherits a copy of the old child's cache, which
	// already holds that subtree's correct top entries.
	mid := newNode()
	mid.top = e.child.top.clone()
	mid.edges[e.label[m]] = &edge{label: e.label[m:], child: e.child}
	added := insertAt(mid, rest[m:], s)
	n.edges[c] = &edge{label: e.label[:m], child: mid}
	return added
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// Suggestions returns the best-ranked words beginning with prefix by walking
// the trie and reading one node cache.
func (t *Trie) Suggestions(prefix string) []Suggestion {
	n := t.root
	rest := prefix
	for len(rest) > 0 {
		e, ok := n.edges[rest[0]]
		if !ok {
			return []Suggestion{}
		}
		m := commonPrefixLen(e.label, rest)
		switch {
		case m == len(e.label):
			n = e.child
			rest = rest[m:]
		case m == len(rest):
			// the prefix ends inside this label; the child's cache covers
			// exactly the words that extend it
			return e.child.top.sorted()
		default:
			// the prefix forks off the vocabulary
			return []Suggestion{}
		}
	}
	return n.top.sorted()
}

// Words returns the number of distinct entries in the index.
func (t *Trie) Words() int {
	return t.words
}
