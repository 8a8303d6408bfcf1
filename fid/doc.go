// Package fid provides a fully indexable dictionary: an immutable bit-vector
// answering access, rank and select queries.
//
// Layout:
//   - Raw bits in 64-bit words (bits-and-blooms/bitset)
//   - Blocks of 8 words (512 bits) with the absolute count of ones before each block
//   - Per-word count of ones relative to the enclosing block (uint16)
//
// The auxiliary index costs 0.375 bits per stored bit. Rank is O(1): one block
// lookup, one word lookup and a masked popcount. Select is O(log N): a binary
// search over block counts, at most 8 word steps and an in-word select.
//
// Example:
//
//	f := fid.MustParse("0110")
//	f.Rank(2)    // 2
//	f.Select(2)  // 2, true
//	f.Select0(2) // 3, true
package fid
