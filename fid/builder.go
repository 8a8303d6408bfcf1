package fid

import "github.com/bits-and-blooms/bitset"

// Builder assembles a FID bit by bit.
//
// The zero value is ready to use. A Builder is not safe for concurrent use.
type Builder struct {
	bits *bitset.BitSet
	n    uint64
}

// NewBuilder creates a Builder with room for capacity bits before growing.
func NewBuilder(capacity uint64) *Builder {
	return &Builder{bits: bitset.New(uint(capacity))}
}

// Append adds one bit at position Len().
func (b *Builder) Append(bit bool) {
	if b.bits == nil {
		b.bits = bitset.New(0)
	}
	if bit {
		// Set grows the underlying storage as needed.
		b.bits.Set(uint(b.n))
	}
	b.n++
}

// AppendRun adds count copies of bit.
func (b *Builder) AppendRun(bit bool, count uint64) {
	for ; count > 0; count-- {
		b.Append(bit)
	}
}

// Len returns the number of bits appended so far.
func (b *Builder) Len() uint64 {
	return b.n
}

// Build returns a FID holding a copy of the appended bits.
// The Builder remains usable; later appends do not affect the result.
func (b *Builder) Build() *FID {
	words := make([]uint64, wordsNeeded(b.n))
	if b.bits != nil {
		copy(words, b.bits.Words())
	}
	// Positions >= n are never set, so the padding of the last word is clean.
	return newFID(bitset.FromWithLength(uint(b.n), words), b.n)
}
