package testutil

import (
	"bytes"
	"math/rand"
	"slices"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// BitString returns n random '0'/'1' characters where each bit is set with
// probability density.
func (r *RNG) BitString(n int, density float64) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		if r.rand.Float64() < density {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// LBS returns a random well-formed LOUDS bit string. Each generated bit is a
// zero with probability zeroProb; generation stops once every node has its
// terminator (zeros == ones + 1).
func (r *RNG) LBS(zeroProb float64) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("10")
	zeros, ones := 1, 1
	for zeros < ones+1 {
		if r.rand.Float64() < zeroProb {
			sb.WriteByte('0')
			zeros++
		} else {
			sb.WriteByte('1')
			ones++
		}
	}
	return sb.String()
}

// Words returns count random non-empty words of at most maxLen bytes drawn
// from alphabet. Duplicates are possible.
func (r *RNG) Words(count, maxLen int, alphabet string) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	words := make([][]byte, count)
	for i := range words {
		w := make([]byte, 1+r.rand.Intn(maxLen))
		for j := range w {
			w[j] = alphabet[r.rand.Intn(len(alphabet))]
		}
		words[i] = w
	}
	return words
}

// SortedUnique returns the distinct words in ascending byte order.
func SortedUnique(words [][]byte) [][]byte {
	out := slices.Clone(words)
	slices.SortFunc(out, bytes.Compare)
	return slices.CompactFunc(out, bytes.Equal)
}

// WithPrefix returns, in ascending order, the distinct words starting with prefix.
func WithPrefix(words [][]byte, prefix []byte) [][]byte {
	var out [][]byte
	for _, w := range SortedUnique(words) {
		if bytes.HasPrefix(w, prefix) {
			out = append(out, w)
		}
	}
	return out
}

// PrefixesOf returns, shortest first, the distinct words that are prefixes of query.
func PrefixesOf(words [][]byte, query []byte) [][]byte {
	var out [][]byte
	for _, w := range SortedUnique(words) {
		if bytes.HasPrefix(query, w) {
			out = append(out, w)
		}
	}
	slices.SortFunc(out, func(a, b []byte) int { return len(a) - len(b) })
	return out
}

// Count returns the number of occurrences of c in s[:end].
func Count(s string, c byte, end int) uint64 {
	return uint64(strings.Count(s[:end], string(c)))
}

// Nth returns the position of the k-th (1-based) occurrence of c in s.
// Nth(s, c, 0) returns (0, true), mirroring select semantics.
func Nth(s string, c byte, k int) (uint64, bool) {
	if k == 0 {
		return 0, true
	}
	seen := 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			seen++
			if seen == k {
				return uint64(i), true
			}
		}
	}
	return 0, false
}
