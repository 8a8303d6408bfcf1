// Package testutil provides testing utilities for succinct.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for bit strings, LOUDS bit strings and word
// sets, plus brute-force oracles for rank/select and trie searches.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	s := rng.BitString(1000, 0.5)         // '0'/'1' text, half ones
//	lbs := rng.LBS(0.6)                   // well-formed LOUDS bit string
//	words := rng.Words(200, 8, "abcde")   // byte words, duplicates allowed
//
// # Oracles
//
//	testutil.Count(s, '1', i+1)           // rank
//	testutil.Nth(s, '0', k)               // select0
//	testutil.WithPrefix(words, prefix)    // predictive search
//	testutil.PrefixesOf(words, query)     // common prefix search
package testutil
