// Package succinct provides a memory-dense, immutable trie for exact lookup
// and prefix search over large word sets.
//
// Words are collected in a Builder and compacted into a Trie whose shape is a
// LOUDS bit string (two bits per node plus a 0.375 bit-per-bit rank index) and
// whose labels live in one flat slice. No pointer-based tree survives the build.
//
// # Quick Start
//
//	b := succinct.NewBuilder[byte]()
//	for _, w := range []string{"apple", "app", "apt"} {
//	    b.Push([]byte(w))
//	}
//	t := b.Build()
//
//	t.ExactMatch([]byte("app")) // true
//	t.ExactMatch([]byte("ap"))  // false
//
//	for w := range t.PredictiveSearch([]byte("ap")) {
//	    fmt.Println(string(w)) // app, apple, apt
//	}
//
//	for w := range t.CommonPrefixSearch([]byte("application")) {
//	    fmt.Println(string(w)) // app
//	}
//
// # Labels
//
// Any cmp.Ordered type can label edges: byte for raw UTF-8, rune for code
// points, or string for token sequences. Results are ordered by comparing
// labels, so byte tries order UTF-8 words by code point.
//
// # Layers
//
//   - fid: bit-vector with O(1) rank and O(log N) select
//   - louds: tree navigation as rank/select arithmetic over a fid.FID
//   - succinct: Builder (staging trie + compaction) and Trie (search)
//
// # Concurrency
//
// Trie, louds.LOUDS and fid.FID are immutable and safe for concurrent readers.
// Builder must be confined to one goroutine.
//
// # Errors
//
// Misses are ordinary results (false or an empty sequence). Out-of-range
// arguments to the lower layers panic with typed errors wrapping
// ErrOutOfRange or ErrInvalidNode; parsing returns errors wrapping
// ErrInvalidBit or ErrMalformed.
package succinct
