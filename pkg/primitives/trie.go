package primitives

import (
	"iter"
	"maps"
	"slices"
)

const rootNode = 0

type trieNode struct {
	children map[rune]int
	wordEnd  bool
}

// Trie is a prefix tree over a set of words.
//
// Nodes live in a single slice and refer to their children by index, so a
// Cursor is nothing more than a node index plus the runes consumed to get
// there. Any number of cursors can walk the same Trie.
type Trie struct {
	nodes    []trieNode
	numWords int
}

// NewTrie creates an empty Trie holding only the root node.
func NewTrie() *Trie {
	return &Trie{
		nodes: []trieNode{{}},
	}
}

// Insert adds a word to the trie. It returns false if the word was already
// present, or if it is empty.
func (t *Trie) Insert(word string) bool {
	if word == "" {
		return false
	}

	node := rootNode
	for _, r := range word {
		node = t.child(node, r)
	}

	if t.nodes[node].wordEnd {
		return false
	}
	t.nodes[node].wordEnd = true
	t.numWords++
	return true
}

// Contains returns true only if word was inserted as a whole word. A strict
// prefix of an inserted word is not contained.
func (t *Trie) Contains(word string) bool {
	if word == "" {
		return false
	}

	node := rootNode
	for _, r := range word {
		next, ok := t.nodes[node].children[r]
		if !ok {
			return false
		}
		node = next
	}
	return t.nodes[node].wordEnd
}

// Cursor returns a new cursor positioned at the root.
func (t *Trie) Cursor() *Cursor {
	return &Cursor{t: t, node: rootNode}
}

// NumWords returns the number of distinct words inserted.
func (t *Trie) NumWords() int {
	return t.numWords
}

// NumNodes returns the number of nodes, including the root.
func (t *Trie) NumNodes() int {
	return len(t.nodes)
}

// Words returns every inserted word in lexical order.
func (t *Trie) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		t.enumerate(rootNode, nil, yield)
	}
}

func (t *Trie) enumerate(node int, prefix []rune, yield func(string) bool) bool {
	n := t.nodes[node]
	if n.wordEnd && !yield(string(prefix)) {
		return false
	}

	l := len(prefix)
	prefix = append(prefix, 0)
	for _, r := range slices.Sorted(maps.Keys(n.children)) {
		prefix[l] = r
		if !t.enumerate(n.children[r], prefix, yield) {
			return false
		}
	}
	return true
}

// child returns the child of node along r, creating it if needed.
func (t *Trie) child(node int, r rune) int {
	if next, ok := t.nodes[node].children[r]; ok {
		return next
	}

	next := len(t.nodes)
	t.nodes = append(t.nodes, trieNode{})
	if t.nodes[node].children == nil {
		t.nodes[node].children = make(map[rune]int)
	}
	t.nodes[node].children[r] = next
	return next
}

// Cursor is a position in a Trie, moved one rune at a time.
type Cursor struct {
	t    *Trie
	node int
	word []rune
}

// Advance moves the cursor along r. If the current node has no child for r
// the cursor is left where it was and Advance returns false.
func (c *Cursor) Advance(r rune) bool {
	next, ok := c.t.nodes[c.node].children[r]
	if !ok {
		return false
	}
	c.node = next
	c.word = append(c.word, r)
	return true
}

// Reset returns the cursor to the root with nothing consumed.
func (c *Cursor) Reset() *Cursor {
	c.node = rootNode
	c.word = c.word[:0]
	return c
}

// IsWordEnd reports whether the runes consumed so far spell an inserted word.
func (c *Cursor) IsWordEnd() bool {
	return c.t.nodes[c.node].wordEnd
}

// Word returns the runes consumed since the last Reset.
func (c *Cursor) Word() string {
	return string(c.word)
}

// Depth returns the number of runes consumed since the last Reset.
func (c *Cursor) Depth() int {
	return len(c.word)
}
