package succinct

import (
	"cmp"
	"context"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/succinct/fid"
	"github.com/hupe1980/succinct/internal/naivetrie"
	"github.com/hupe1980/succinct/louds"
)

// Builder collects words and compacts them into a Trie.
//
// Example:
//
//	b := succinct.NewBuilder[byte]()
//	b.Push([]byte("apple"))
//	b.Push([]byte("app"))
//	t := b.Build()
//	t.ExactMatch([]byte("app")) // true
//
// A Builder is not safe for concurrent use.
type Builder[L cmp.Ordered] struct {
	root *naivetrie.Node[L]
	opts options
}

// NewBuilder creates an empty Builder.
func NewBuilder[L cmp.Ordered](optFns ...Option) *Builder[L] {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Builder[L]{
		root: naivetrie.New[L](),
		opts: opts,
	}
}

// Push adds word. Words may be pushed in any order; pushing a word again is a
// no-op. The empty word is ignored.
func (b *Builder[L]) Push(word []L) {
	b.opts.logger.LogPush(context.Background(), len(word))
	b.root.Push(word)
}

// PushAll adds every word in order.
func (b *Builder[L]) PushAll(words ...[]L) {
	for _, w := range words {
		b.Push(w)
	}
}

// Len returns the number of distinct words pushed so far.
func (b *Builder[L]) Len() int {
	return b.root.Len()
}

// Build compacts the words pushed so far into a Trie.
//
// Build does not consume the Builder: it may be called again after further
// pushes, and every returned Trie is an independent snapshot.
func (b *Builder[L]) Build() *Trie[L] {
	start := time.Now()

	// Super-root: one child (the root), then its terminator.
	bits := fid.NewBuilder(0)
	bits.Append(true)
	bits.Append(false)

	var labels []L
	terminals := roaring64.New()
	for node := range b.root.BreadthFirst() {
		switch node.Kind() {
		case naivetrie.KindRoot:
		case naivetrie.KindIntermOrLeaf:
			bits.Append(true)
			labels = append(labels, node.Label())
			if node.IsTerminal() {
				// labels[n-2] belongs to node n.
				terminals.Add(uint64(len(labels) + 1))
			}
		case naivetrie.KindPhantomSibling:
			bits.Append(false)
		}
	}
	terminals.RunOptimize()

	lbs := bits.Build()
	tree, err := louds.New(lbs)
	if err != nil {
		panic(fmt.Sprintf("succinct: staging trie produced an invalid LOUDS bit string: %v", err))
	}

	t := &Trie[L]{
		louds:     tree,
		labels:    labels,
		terminals: terminals,
		metrics:   b.opts.metricsCollector,
	}

	duration := time.Since(start)
	b.opts.logger.LogBuild(context.Background(), t.NumNodes(), t.Len(), lbs.Len(), duration)
	b.opts.metricsCollector.RecordBuild(t.NumNodes(), t.Len(), duration)

	return t
}
