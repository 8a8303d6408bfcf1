package naivetrie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trace renders a traversal as one token per node: R for root, P for a phantom
// sibling, and the label (with '*' for terminals) otherwise.
func trace(root *Node[byte]) string {
	var parts []string
	for n := range root.BreadthFirst() {
		switch n.Kind() {
		case KindRoot:
			parts = append(parts, "R")
		case KindPhantomSibling:
			parts = append(parts, "P")
		default:
			tok := string(n.Label())
			if n.IsTerminal() {
				tok += "*"
			}
			parts = append(parts, tok)
		}
	}
	return strings.Join(parts, " ")
}

func TestPush_SortedChildren(t *testing.T) {
	root := New[byte]()
	for _, w := range []string{"d", "b", "c", "a", "b"} {
		root.Push([]byte(w))
	}

	var labels []byte
	for _, c := range root.Children() {
		labels = append(labels, c.Label())
	}
	assert.Equal(t, []byte("abcd"), labels)
}

func TestPush_Idempotent(t *testing.T) {
	once := New[byte]()
	once.Push([]byte("apple"))

	twice := New[byte]()
	twice.Push([]byte("apple"))
	twice.Push([]byte("apple"))

	assert.Equal(t, trace(once), trace(twice))
	assert.Equal(t, 1, twice.Len())
	assert.Equal(t, 5, twice.NumNodes())
}

func TestPush_EmptyWord(t *testing.T) {
	root := New[byte]()
	root.Push(nil)

	assert.Equal(t, 0, root.Len())
	assert.Equal(t, "R P", trace(root))
}

func TestPush_PrefixMarksInnerNode(t *testing.T) {
	root := New[byte]()
	root.Push([]byte("apple"))
	root.Push([]byte("app"))

	assert.Equal(t, 2, root.Len())
	assert.Equal(t, 5, root.NumNodes())
	assert.Equal(t, "R a P p P p* P l P e* P P", trace(root))
}

func TestBreadthFirst_Order(t *testing.T) {
	root := New[byte]()
	for _, w := range []string{"b", "ac", "ab"} {
		root.Push([]byte(w))
	}

	assert.Equal(t, "R a b* P b* c* P P P P", trace(root))
}

func TestBreadthFirst_StopsEarly(t *testing.T) {
	root := New[byte]()
	root.Push([]byte("abc"))

	visited := 0
	for range root.BreadthFirst() {
		visited++
		if visited == 2 {
			break
		}
	}
	assert.Equal(t, 2, visited)
}

func TestBreadthFirst_ReflectsLaterPushes(t *testing.T) {
	root := New[rune]()
	root.Push([]rune("ä"))
	seq := root.BreadthFirst()

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	require.Equal(t, 4, count())

	root.Push([]rune("ö"))
	assert.Equal(t, 6, count())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "root", KindRoot.String())
	assert.Equal(t, "interm-or-leaf", KindIntermOrLeaf.String())
	assert.Equal(t, "phantom-sibling", KindPhantomSibling.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
