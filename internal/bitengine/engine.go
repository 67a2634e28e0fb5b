package bitengine

import "math/bits"

// Word is the set of storage word types a bit container can be backed by.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// NotFound is returned by the search functions when no bit in the
// requested state exists at or after the start position.
const NotFound = ^uint(0)

// BitsPerWord returns the bit width of the word type W.
func BitsPerWord[W Word]() uint {
	// ^W(0) is all-ones; its popcount is the word width.
	return uint(bits.OnesCount64(uint64(^W(0))))
}

// locate resolves a bit position to a word index and an in-word mask.
// The single-word case needs no index arithmetic.
func locate[W Word](buf []W, pos uint) (uint, W) {
	if len(buf) == 1 {
		return 0, W(1) << pos
	}
	w := BitsPerWord[W]()
	index := pos >> uint(bits.TrailingZeros(w))
	return index, W(1) << (pos & (w - 1))
}

// Test reports whether the bit at pos is set.
// An empty buffer always reports false.
func Test[W Word](buf []W, pos uint) bool {
	if len(buf) == 0 {
		return false
	}
	index, mask := locate(buf, pos)
	return buf[index]&mask != 0
}

// Set sets the bit at pos. No-op on an empty buffer.
func Set[W Word](buf []W, pos uint) {
	if len(buf) == 0 {
		return
	}
	index, mask := locate(buf, pos)
	buf[index] |= mask
}

// SetTo sets the bit at pos to the given value. No-op on an empty buffer.
func SetTo[W Word](buf []W, pos uint, value bool) {
	if len(buf) == 0 {
		return
	}
	index, mask := locate(buf, pos)
	if value {
		buf[index] |= mask
	} else {
		buf[index] &^= mask
	}
}

// Unset clears the bit at pos. No-op on an empty buffer.
func Unset[W Word](buf []W, pos uint) {
	if len(buf) == 0 {
		return
	}
	index, mask := locate(buf, pos)
	buf[index] &^= mask
}

// FlipAll complements every word. The caller must re-apply its padding
// mask afterwards.
func FlipAll[W Word](buf []W) {
	for i := range buf {
		buf[i] = ^buf[i]
	}
}

// Flip complements the bit at pos if pos < totalBits, else no-op.
func Flip[W Word](buf []W, totalBits, pos uint) {
	if pos >= totalBits || len(buf) == 0 {
		return
	}
	index, mask := locate(buf, pos)
	buf[index] ^= mask
}

// Count returns the number of set bits across the buffer.
func Count[W Word](buf []W) int {
	n := 0
	for _, v := range buf {
		n += bits.OnesCount64(uint64(v))
	}
	return n
}

// All reports whether every valid bit is set: each word but the last
// must be all-ones and the last must match topMask. Vacuously true for
// an empty buffer.
func All[W Word](buf []W, topMask W) bool {
	if len(buf) == 0 {
		return true
	}
	for _, v := range buf[:len(buf)-1] {
		if v != ^W(0) {
			return false
		}
	}
	return buf[len(buf)-1] == ^W(0)&topMask
}

// None reports whether every word is zero.
func None[W Word](buf []W) bool {
	for _, v := range buf {
		if v != 0 {
			return false
		}
	}
	return true
}

// And combines dst &= src word-wise over the common prefix.
func And[W Word](dst, src []W) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] &= src[i]
	}
}

// Or combines dst |= src word-wise over the common prefix.
func Or[W Word](dst, src []W) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] |= src[i]
	}
}

// Xor combines dst ^= src word-wise over the common prefix.
func Xor[W Word](dst, src []W) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] ^= src[i]
	}
}

// Equal reports word-wise equality. Both operands are assumed to
// satisfy the padding invariant, so padding bits can never produce a
// false mismatch.
func Equal[W Word](a, b []W) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
