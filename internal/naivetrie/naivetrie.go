// Package naivetrie provides the mutable pointer-based trie used while
// collecting words, and the breadth-first traversal that feeds LOUDS
// compaction.
package naivetrie

import (
	"cmp"
	"iter"
	"sort"
)

// Kind discriminates the node variants.
type Kind uint8

const (
	// KindRoot is the unlabeled root.
	KindRoot Kind = iota
	// KindIntermOrLeaf is a labeled node, inner or leaf.
	KindIntermOrLeaf
	// KindPhantomSibling marks the end of a child list during traversal.
	KindPhantomSibling
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindIntermOrLeaf:
		return "interm-or-leaf"
	case KindPhantomSibling:
		return "phantom-sibling"
	default:
		return "unknown"
	}
}

// Node is a staging trie node. Label and terminal are meaningful only for
// KindIntermOrLeaf; children are sorted by label and unique.
type Node[L cmp.Ordered] struct {
	kind     Kind
	label    L
	terminal bool
	children []*Node[L]
}

// New creates an empty trie and returns its root.
func New[L cmp.Ordered]() *Node[L] {
	return &Node[L]{kind: KindRoot}
}

// Kind returns the node variant.
func (n *Node[L]) Kind() Kind { return n.kind }

// Label returns the label of the edge into n.
func (n *Node[L]) Label() L { return n.label }

// IsTerminal reports whether a word ends at n.
func (n *Node[L]) IsTerminal() bool { return n.terminal }

// Children returns n's children in ascending label order.
func (n *Node[L]) Children() []*Node[L] { return n.children }

// Push inserts word below n, marking its last node terminal. Pushing a word
// twice is a no-op; pushing an empty word does nothing.
func (n *Node[L]) Push(word []L) {
	if len(word) == 0 {
		return
	}
	cur := n
	for _, label := range word {
		cur = cur.childOrInsert(label)
	}
	cur.terminal = true
}

func (n *Node[L]) childOrInsert(label L) *Node[L] {
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].label >= label
	})
	if i < len(n.children) && n.children[i].label == label {
		return n.children[i]
	}

	child := &Node[L]{kind: KindIntermOrLeaf, label: label}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	return child
}

// Len returns the number of distinct words stored below n.
func (n *Node[L]) Len() int {
	count := 0
	for node := range n.BreadthFirst() {
		if node.terminal {
			count++
		}
	}
	return count
}

// NumNodes returns the number of labeled nodes below n.
func (n *Node[L]) NumNodes() int {
	count := 0
	for node := range n.BreadthFirst() {
		if node.kind == KindIntermOrLeaf {
			count++
		}
	}
	return count
}

// BreadthFirst visits n, then its descendants level by level. A
// KindPhantomSibling marker is queued right after the children of every
// visited node, childless ones included, so the stream holds each node's
// child list followed by one marker. Each call starts a new traversal.
func (n *Node[L]) BreadthFirst() iter.Seq[*Node[L]] {
	phantom := &Node[L]{kind: KindPhantomSibling}
	return func(yield func(*Node[L]) bool) {
		queue := []*Node[L]{n}
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			if node.kind != KindPhantomSibling {
				queue = append(queue, node.children...)
				queue = append(queue, phantom)
			}
			if !yield(node) {
				return
			}
		}
	}
}
