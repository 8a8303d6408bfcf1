package succinct

import (
	"cmp"
	"iter"
	"slices"
	"sort"
	"time"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/succinct/louds"
)

// rootNode is the node number of the unlabeled root.
const rootNode louds.NodeNum = 1

// Trie is an immutable labeled trie encoded with LOUDS.
//
// Node n >= 2 carries the label labels[n-2] and is terminal (a word ends
// there) iff terminals contains n. Children of every node are stored in
// ascending label order as consecutive node numbers.
//
// A Trie is safe for concurrent use by multiple goroutines.
type Trie[L cmp.Ordered] struct {
	louds     *louds.LOUDS
	labels    []L
	terminals *roaring64.Bitmap
	metrics   MetricsCollector
}

// Len returns the number of distinct words.
func (t *Trie[L]) Len() int {
	return int(t.terminals.GetCardinality())
}

// NumNodes returns the number of labeled nodes.
func (t *Trie[L]) NumNodes() int {
	return len(t.labels)
}

// LOUDS returns the underlying tree encoding.
func (t *Trie[L]) LOUDS() *louds.LOUDS {
	return t.louds
}

// SizeInBytes estimates the memory held by the trie: the LOUDS bit-vector
// with its rank index, the label table and the terminal set. For label types
// with indirection (strings) only the headers are counted.
func (t *Trie[L]) SizeInBytes() uint64 {
	var zero L
	return t.louds.Bits().SizeInBytes() +
		uint64(len(t.labels))*uint64(unsafe.Sizeof(zero)) +
		t.terminals.GetSizeInBytes()
}

func (t *Trie[L]) label(n louds.NodeNum) L {
	return t.labels[n-2]
}

func (t *Trie[L]) isTerminal(n louds.NodeNum) bool {
	return t.terminals.Contains(uint64(n))
}

// child returns the child of parent labeled label.
func (t *Trie[L]) child(parent louds.NodeNum, label L) (louds.NodeNum, bool) {
	first, end := t.louds.ChildRange(parent)
	degree := int(end - first)
	if degree == 0 {
		return 0, false
	}

	// Sibling bits are contiguous, so their node numbers are too.
	base := t.louds.IndexToNodeNum(first)
	j := sort.Search(degree, func(j int) bool {
		return t.label(base+louds.NodeNum(j)) >= label
	})
	if j < degree && t.label(base+louds.NodeNum(j)) == label {
		return base + louds.NodeNum(j), true
	}
	return 0, false
}

// descend follows query from the root.
func (t *Trie[L]) descend(query []L) (louds.NodeNum, bool) {
	cur := rootNode
	for _, label := range query {
		next, ok := t.child(cur, label)
		if !ok {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// ExactMatch reports whether query is one of the indexed words.
// The empty query never matches.
func (t *Trie[L]) ExactMatch(query []L) bool {
	start := time.Now()
	found := false
	if len(query) > 0 {
		if n, ok := t.descend(query); ok {
			found = t.isTerminal(n)
		}
	}
	t.metrics.RecordExactMatch(found, time.Since(start))
	return found
}

// IsPrefix reports whether some indexed word starts with query.
// The empty query is a prefix of every word, so it reports Len() > 0.
func (t *Trie[L]) IsPrefix(query []L) bool {
	n, ok := t.descend(query)
	if !ok {
		return false
	}
	// Every labeled node lies on the path of at least one word.
	return n != rootNode || t.Len() > 0
}

// PredictiveSearch yields every indexed word starting with prefix, the prefix
// itself included when indexed, in ascending lexicographic order. An empty
// prefix yields all words. Each yielded slice is newly allocated.
func (t *Trie[L]) PredictiveSearch(prefix []L) iter.Seq[[]L] {
	return func(yield func([]L) bool) {
		start := time.Now()
		results := 0
		defer func() {
			t.metrics.RecordSearch(SearchPredictive, results, time.Since(start))
		}()

		n, ok := t.descend(prefix)
		if !ok {
			return
		}

		type frame struct {
			node  louds.NodeNum
			depth int
		}

		path := slices.Clone(prefix)
		stack := []frame{{node: n, depth: len(prefix)}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			path = path[:f.depth]
			if f.depth > len(prefix) {
				path[f.depth-1] = t.label(f.node)
			}

			if t.isTerminal(f.node) {
				results++
				if !yield(slices.Clone(path)) {
					return
				}
			}

			first, end := t.louds.ChildRange(f.node)
			if first == end {
				continue
			}
			// Reserve the slot each child writes its label into.
			var zero L
			path = append(path[:f.depth], zero)

			base := t.louds.IndexToNodeNum(first)
			// Pushed in reverse so the smallest label is visited first.
			for c := base + louds.NodeNum(end-first) - 1; c >= base; c-- {
				stack = append(stack, frame{node: c, depth: f.depth + 1})
			}
		}
	}
}

// CommonPrefixSearch yields every indexed word that is a prefix of query,
// shortest first. Each yielded slice is newly allocated.
func (t *Trie[L]) CommonPrefixSearch(query []L) iter.Seq[[]L] {
	return func(yield func([]L) bool) {
		start := time.Now()
		results := 0
		defer func() {
			t.metrics.RecordSearch(SearchCommonPrefix, results, time.Since(start))
		}()

		cur := rootNode
		for i, label := range query {
			next, ok := t.child(cur, label)
			if !ok {
				return
			}
			cur = next
			if t.isTerminal(cur) {
				results++
				if !yield(slices.Clone(query[:i+1])) {
					return
				}
			}
		}
	}
}

// Words yields every indexed word in ascending lexicographic order.
func (t *Trie[L]) Words() iter.Seq[[]L] {
	return t.PredictiveSearch(nil)
}
