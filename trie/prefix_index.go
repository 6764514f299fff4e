/*
Package trie implements PrefixIndex, a prefix tree over strings used for
keyword lookup and prefix enumeration.

Characters are the bytes of the Go string, so every string, including one
that is not valid UTF-8, is reconstructed exactly by EntriesWithPrefix.
A PrefixIndex is not safe for concurrent use.
*/
package trie

// node is a tree node. Each node exclusively owns its children; the path
// from the root spells the entry and _terminal_ marks a complete entry.
type node struct {
	children map[byte]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// PrefixIndex is a prefix tree with a count of distinct entries.
// Entries cannot be removed individually; use Clear to drop everything.
type PrefixIndex struct {
	root *node
	size int
}

// New returns an empty PrefixIndex
func New() *PrefixIndex {
	return &PrefixIndex{root: newNode()}
}

// Insert adds _entry_ to the index. Empty strings are ignored and inserting
// an existing entry leaves the size unchanged.
func (t *PrefixIndex) Insert(entry string) {
	if entry == "" {
		return
	}
	current := t.root
	for i := 0; i < len(entry); i++ {
		child, ok := current.children[entry[i]]
		if !ok {
			child = newNode()
			current.children[entry[i]] = child
		}
		current = child
	}
	if !current.terminal {
		current.terminal = true
		t.size++
	}
}

// InsertAll inserts every entry in _entries_
func (t *PrefixIndex) InsertAll(entries ...string) {
	for _, entry := range entries {
		t.Insert(entry)
	}
}

// Contains reports whether _entry_ was inserted. The empty string is never contained.
func (t *PrefixIndex) Contains(entry string) bool {
	if entry == "" {
		return false
	}
	n := t.find(entry)
	return n != nil && n.terminal
}

// HasPrefix reports whether any inserted entry starts with _prefix_.
// Every index, including an empty one, has the empty prefix.
func (t *PrefixIndex) HasPrefix(prefix string) bool {
	return t.find(prefix) != nil
}

// EntriesWithPrefix returns every entry starting with _prefix_, including
// _prefix_ itself when it was inserted. The order is unspecified.
func (t *PrefixIndex) EntriesWithPrefix(prefix string) []string {
	results := []string{}
	n := t.find(prefix)
	if n == nil {
		return results
	}
	buf := []byte(prefix)
	return collect(n, buf, results)
}

// Clear drops every entry
func (t *PrefixIndex) Clear() {
	t.root = newNode()
	t.size = 0
}

// Size returns the number of distinct entries
func (t *PrefixIndex) Size() int {
	return t.size
}

func (t *PrefixIndex) find(s string) *node {
	current := t.root
	for i := 0; i < len(s); i++ {
		child, ok := current.children[s[i]]
		if !ok {
			return nil
		}
		current = child
	}
	return current
}

// collect appends every terminal path below _n_ to _results_. _path_ holds
// the bytes leading to _n_ and is shared across the walk.
func collect(n *node, path []byte, results []string) []string {
	if n.terminal {
		results = append(results, string(path))
	}
	for c, child := range n.children {
		results = collect(child, append(path, c), results)
	}
	return results
}
