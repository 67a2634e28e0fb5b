// Package bitset provides a fixed-capacity bit vector backed by the
// narrowest unsigned word type that fits the requested number of bits.
//
// A BitSet is created with a capacity that never changes. Storage is a
// single word slice allocated at construction; no operation allocates
// afterwards. This makes the type suitable where a dynamically sized
// bit container is unavailable or unacceptable.
//
// # Quick Start
//
// Let the package pick the word width:
//
//	b := bitset.New(12)          // 12 bits in one uint16 word
//	b.Set(3)
//	b.Set(11)
//	fmt.Println(b.Count())       // 2
//	fmt.Println(b)               // "100000001000"
//
// Or fix the word width at compile time:
//
//	b := bitset.Of[uint64](70)   // 70 bits in two uint64 words
//	b.Set(69)
//	fmt.Println(b.Test(69))      // true
//
// # Properties
//
//   - Word width selection: 8/16/32/64-bit words, narrowest first for
//     single-word capacities, widest for multi-word (see WordBitsFor)
//   - Little-endian word ordering; bit 0 is the least significant bit
//     of word 0
//   - Padding bits (positions at or above the capacity in the final
//     word) always read as zero
//   - Out-of-range positions are no-ops on write and false on read;
//     searches return NotFound rather than failing
//   - Text encoding: exactly Size() glyphs, most significant bit first
//
// The type is a plain in-memory value with no internal locking. Sharing
// one instance across goroutines requires external synchronization.
package bitset
