package fid

import (
	"math/bits"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const (
	// WordBits is the number of bits per storage word.
	WordBits = 64

	// BlockWords is the number of words covered by one absolute rank entry.
	BlockWords = 8

	// BlockBits is the number of bits per block (512 bits = one cache line).
	BlockBits = BlockWords * WordBits
)

// FID is an immutable bit-vector with a precomputed rank/select index.
//
// A FID is safe for concurrent use by multiple goroutines.
type FID struct {
	bits *bitset.BitSet

	// words aliases the bitset storage. Bits at positions >= n are zero.
	words []uint64

	// n is the number of valid bits.
	n uint64

	// blockRanks[b] is the number of ones before block b.
	// blockRanks[numBlocks] is the total number of ones.
	blockRanks []uint64

	// wordRanks[w] is the number of ones in block w/BlockWords before word w.
	wordRanks []uint16
}

// New creates a FID from a boolean sequence.
func New(bs []bool) *FID {
	set := bitset.New(uint(len(bs)))
	for i, b := range bs {
		if b {
			set.Set(uint(i))
		}
	}
	return newFID(set, uint64(len(bs)))
}

// Parse creates a FID from a string of '0' and '1' characters.
func Parse(s string) (*FID, error) {
	set := bitset.New(uint(len(s)))
	for i, c := range s {
		switch c {
		case '0':
		case '1':
			set.Set(uint(i))
		default:
			return nil, &ParseError{Pos: i, Char: c}
		}
	}
	return newFID(set, uint64(len(s))), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) *FID {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

// newFID takes ownership of set, which must hold exactly wordsNeeded(n) words
// with all bits >= n cleared.
func newFID(set *bitset.BitSet, n uint64) *FID {
	words := set.Words()
	numWords := wordsNeeded(n)
	numBlocks := (numWords + BlockWords - 1) / BlockWords

	f := &FID{
		bits:       set,
		words:      words[:numWords],
		n:          n,
		blockRanks: make([]uint64, numBlocks+1),
		wordRanks:  make([]uint16, numWords),
	}

	var total uint64
	var inBlock uint16
	for w := 0; w < numWords; w++ {
		if w%BlockWords == 0 {
			f.blockRanks[w/BlockWords] = total
			inBlock = 0
		}
		f.wordRanks[w] = inBlock
		c := bits.OnesCount64(f.words[w])
		inBlock += uint16(c)
		total += uint64(c)
	}
	f.blockRanks[numBlocks] = total

	return f
}

func wordsNeeded(n uint64) int {
	return int((n + WordBits - 1) / WordBits)
}

// Len returns the number of bits.
func (f *FID) Len() uint64 {
	return f.n
}

// Ones returns the number of set bits.
func (f *FID) Ones() uint64 {
	return f.blockRanks[len(f.blockRanks)-1]
}

// Zeros returns the number of unset bits.
func (f *FID) Zeros() uint64 {
	return f.n - f.Ones()
}

// Access returns the bit at position i. It panics if i >= Len().
func (f *FID) Access(i uint64) bool {
	f.checkRange("Access", i)
	return f.bits.Test(uint(i))
}

// Rank returns the number of ones in positions [0, i]. It panics if i >= Len().
func (f *FID) Rank(i uint64) uint64 {
	f.checkRange("Rank", i)
	return f.rank(i)
}

// Rank0 returns the number of zeros in positions [0, i]. It panics if i >= Len().
func (f *FID) Rank0(i uint64) uint64 {
	f.checkRange("Rank0", i)
	return i + 1 - f.rank(i)
}

func (f *FID) rank(i uint64) uint64 {
	w := i / WordBits
	// Keeps bits [0, i%64]; the shift wraps to 0 for bit 63, giving all ones.
	mask := (uint64(2) << (i % WordBits)) - 1
	return f.blockRanks[w/BlockWords] +
		uint64(f.wordRanks[w]) +
		uint64(bits.OnesCount64(f.words[w]&mask))
}

// Select returns the position of the k-th one (1-based).
// Select(0) returns (0, true). The boolean is false if fewer than k ones exist.
func (f *FID) Select(k uint64) (uint64, bool) {
	if k == 0 {
		return 0, true
	}
	if k > f.Ones() {
		return 0, false
	}

	numBlocks := len(f.blockRanks) - 1
	b := sort.Search(numBlocks, func(b int) bool {
		return f.blockRanks[b+1] >= k
	})
	rem := k - f.blockRanks[b]

	first := b * BlockWords
	last := min(first+BlockWords, len(f.words))
	for w := first; w < last; w++ {
		before := uint64(f.wordRanks[w])
		c := uint64(bits.OnesCount64(f.words[w]))
		if before+c >= rem {
			return uint64(w)*WordBits + selectInWord(f.words[w], rem-before), true
		}
	}

	// Unreachable while the index is consistent with the words.
	panic("fid: corrupted rank index")
}

// Select0 returns the position of the k-th zero (1-based).
// Select0(0) returns (0, true). The boolean is false if fewer than k zeros exist.
func (f *FID) Select0(k uint64) (uint64, bool) {
	if k == 0 {
		return 0, true
	}
	if k > f.Zeros() {
		return 0, false
	}

	numBlocks := len(f.blockRanks) - 1
	b := sort.Search(numBlocks, func(b int) bool {
		return f.zerosBeforeBlock(b+1) >= k
	})
	rem := k - f.zerosBeforeBlock(b)

	first := b * BlockWords
	last := min(first+BlockWords, len(f.words))
	for w := first; w < last; w++ {
		before := uint64(w-first)*WordBits - uint64(f.wordRanks[w])
		valid := min(uint64(WordBits), f.n-uint64(w)*WordBits)
		c := valid - uint64(bits.OnesCount64(f.words[w]))
		if before+c >= rem {
			return uint64(w)*WordBits + selectInWord(^f.words[w], rem-before), true
		}
	}

	panic("fid: corrupted rank index")
}

// zerosBeforeBlock counts zeros among the valid bits preceding block b.
func (f *FID) zerosBeforeBlock(b int) uint64 {
	start := min(uint64(b)*BlockBits, f.n)
	return start - f.blockRanks[b]
}

// selectInWord returns the offset of the r-th (1-based) set bit of x.
func selectInWord(x uint64, r uint64) uint64 {
	for ; r > 1; r-- {
		x &= x - 1
	}
	return uint64(bits.TrailingZeros64(x))
}

func (f *FID) checkRange(op string, i uint64) {
	if i >= f.n {
		panic(&OutOfRangeError{Op: op, Index: i, Len: f.n})
	}
}

// SizeInBytes returns the memory used by the raw bits and the rank index.
func (f *FID) SizeInBytes() uint64 {
	return uint64(len(f.words))*8 +
		uint64(len(f.blockRanks))*8 +
		uint64(len(f.wordRanks))*2
}

// String returns the bits as a string of '0' and '1' characters.
func (f *FID) String() string {
	var sb strings.Builder
	sb.Grow(int(f.n))
	for i := uint64(0); i < f.n; i++ {
		if f.bits.Test(uint(i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
