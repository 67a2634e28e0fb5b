package bitset

import (
	"github.com/labodj/etl/internal/bitengine"
)

// Word is the set of storage word types a BitSet can be backed by.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// NotFound is returned by FindFirst and FindNext when no bit in the
// requested state exists.
const NotFound = bitengine.NotFound

// BitSet is a fixed-capacity bit vector backed by words of type W.
//
// The capacity is set at construction and never changes. The backing
// slice is the only allocation the type ever makes. Bit positions at
// or above the capacity inside the final word (padding bits) always
// read as zero; every mutation that could disturb them re-applies the
// padding mask.
type BitSet[W Word] struct {
	words   []W
	nbits   int
	topMask W
}

// Of creates a zeroed BitSet with the given capacity in bits, backed by
// words of type W. A capacity of 0 yields an empty set with no storage.
// Of panics if nbits is negative.
func Of[W Word](nbits int) *BitSet[W] {
	if nbits < 0 {
		panic("bitset: negative capacity")
	}
	w := int(bitengine.BitsPerWord[W]())
	count := (nbits + w - 1) / w

	b := &BitSet[W]{
		words: make([]W, count),
		nbits: nbits,
	}

	// Mask with ones in every valid position of the final word;
	// all-ones when the capacity is a word multiple.
	shift := uint(w-(count*w-nbits)) % uint(w)
	if shift == 0 {
		b.topMask = ^W(0)
	} else {
		b.topMask = ^(^W(0) << shift)
	}
	return b
}

// OfValue creates a BitSet initialized from an unsigned 64-bit value.
// The least significant bits populate the lowest words; bits beyond
// the capacity are discarded.
func OfValue[W Word](nbits int, v uint64) *BitSet[W] {
	b := Of[W](nbits)
	b.SetValue(v)
	return b
}

// OfString creates a BitSet initialized from a textual pattern, most
// significant bit first, with '1' marking set bits.
func OfString[W Word](nbits int, text string) *BitSet[W] {
	b := Of[W](nbits)
	b.SetString(text)
	return b
}

// Size returns the capacity in bits.
func (b *BitSet[W]) Size() int {
	return b.nbits
}

// WordBits returns the width of the storage word in bits.
func (b *BitSet[W]) WordBits() int {
	return int(bitengine.BitsPerWord[W]())
}

// Words returns the backing word slice. Word 0 holds bits [0, W); bit 0
// is the least significant bit. Writes through the returned slice must
// keep padding bits zero.
func (b *BitSet[W]) Words() []W {
	return b.words
}

// Test reports whether the bit at pos is set. Positions at or beyond
// the capacity report false.
func (b *BitSet[W]) Test(pos uint) bool {
	if pos >= uint(b.nbits) {
		return false
	}
	return bitengine.Test(b.words, pos)
}

// Set sets the bit at pos. Positions at or beyond the capacity are
// no-ops.
func (b *BitSet[W]) Set(pos uint) {
	if pos >= uint(b.nbits) {
		return
	}
	bitengine.Set(b.words, pos)
}

// SetTo sets the bit at pos to the given value. Positions at or beyond
// the capacity are no-ops.
func (b *BitSet[W]) SetTo(pos uint, value bool) {
	if pos >= uint(b.nbits) {
		return
	}
	bitengine.SetTo(b.words, pos, value)
}

// Unset clears the bit at pos. Positions at or beyond the capacity are
// no-ops.
func (b *BitSet[W]) Unset(pos uint) {
	if pos >= uint(b.nbits) {
		return
	}
	bitengine.Unset(b.words, pos)
}

// Flip complements the bit at pos. Positions at or beyond the capacity
// are no-ops.
func (b *BitSet[W]) Flip(pos uint) {
	bitengine.Flip(b.words, uint(b.nbits), pos)
}

// SetAll sets every bit.
func (b *BitSet[W]) SetAll() {
	for i := range b.words {
		b.words[i] = ^W(0)
	}
	b.clearPadding()
}

// ClearAll clears every bit.
func (b *BitSet[W]) ClearAll() {
	clear(b.words)
}

// FlipAll complements every bit.
func (b *BitSet[W]) FlipAll() {
	bitengine.FlipAll(b.words)
	b.clearPadding()
}

// SetValue re-initialises the set from an unsigned 64-bit value. The
// least significant bits populate the lowest words; bits beyond the
// capacity are discarded.
func (b *BitSet[W]) SetValue(v uint64) {
	bitengine.SetValue(b.words, v)
	b.clearPadding()
}

// Count returns the number of set bits.
func (b *BitSet[W]) Count() int {
	return bitengine.Count(b.words)
}

// All reports whether every bit is set. Vacuously true for an empty set.
func (b *BitSet[W]) All() bool {
	return bitengine.All(b.words, b.topMask)
}

// None reports whether no bit is set.
func (b *BitSet[W]) None() bool {
	return bitengine.None(b.words)
}

// Any reports whether at least one bit is set.
func (b *BitSet[W]) Any() bool {
	return !b.None()
}

// FindFirst returns the position of the first bit in the given state,
// or NotFound.
func (b *BitSet[W]) FindFirst(state bool) uint {
	return bitengine.FindFirst(b.words, uint(b.nbits), state)
}

// FindNext returns the smallest position >= from holding a bit in the
// given state, or NotFound.
func (b *BitSet[W]) FindNext(state bool, from uint) uint {
	return bitengine.FindNext(b.words, uint(b.nbits), state, from)
}

// ShiftLeft shifts every bit n positions towards higher indices,
// in place. Bits pushed past the capacity are discarded; vacated low
// positions fill with zero. A shift of Size() or more clears the set.
func (b *BitSet[W]) ShiftLeft(n uint) {
	if n >= uint(b.nbits) {
		b.ClearAll()
		return
	}
	if n == 0 {
		return
	}
	bitengine.ShiftLeft(b.words, n)
	b.clearPadding()
}

// ShiftRight shifts every bit n positions towards lower indices,
// in place. Bits pushed past position 0 are discarded; vacated high
// positions fill with zero. A shift of Size() or more clears the set.
func (b *BitSet[W]) ShiftRight(n uint) {
	if n >= uint(b.nbits) {
		b.ClearAll()
		return
	}
	if n == 0 {
		return
	}
	bitengine.ShiftRight(b.words, n)
}

// ShiftedLeft returns a copy of the set shifted left by n.
func (b *BitSet[W]) ShiftedLeft(n uint) *BitSet[W] {
	c := b.Clone()
	c.ShiftLeft(n)
	return c
}

// ShiftedRight returns a copy of the set shifted right by n.
func (b *BitSet[W]) ShiftedRight(n uint) *BitSet[W] {
	c := b.Clone()
	c.ShiftRight(n)
	return c
}

// And intersects b with other in place. Both sets must have the same
// capacity; with differing capacities only the common word prefix is
// combined.
func (b *BitSet[W]) And(other *BitSet[W]) {
	bitengine.And(b.words, other.words)
}

// Or unions other into b in place. Both sets must have the same
// capacity; with differing capacities only the common word prefix is
// combined.
func (b *BitSet[W]) Or(other *BitSet[W]) {
	bitengine.Or(b.words, other.words)
}

// Xor combines other into b by symmetric difference, in place. Both
// sets must have the same capacity; with differing capacities only the
// common word prefix is combined.
func (b *BitSet[W]) Xor(other *BitSet[W]) {
	bitengine.Xor(b.words, other.words)
}

// Equal reports whether both sets have the same capacity and the same
// bits. Padding bits cannot cause a false mismatch since both operands
// keep them zero.
func (b *BitSet[W]) Equal(other *BitSet[W]) bool {
	return b.nbits == other.nbits && bitengine.Equal(b.words, other.words)
}

// Swap exchanges the contents of both sets element-wise. Both sets
// must have the same capacity.
func (b *BitSet[W]) Swap(other *BitSet[W]) {
	n := min(len(b.words), len(other.words))
	for i := 0; i < n; i++ {
		b.words[i], other.words[i] = other.words[i], b.words[i]
	}
}

// Clone returns an independent copy of the set.
func (b *BitSet[W]) Clone() *BitSet[W] {
	c := &BitSet[W]{
		words:   make([]W, len(b.words)),
		nbits:   b.nbits,
		topMask: b.topMask,
	}
	copy(c.words, b.words)
	return c
}

// CopyFrom replaces the contents of b with those of src. Both sets
// must have the same capacity.
func (b *BitSet[W]) CopyFrom(src *BitSet[W]) {
	copy(b.words, src.words)
	b.clearPadding()
}

// And returns the intersection of two same-capacity sets.
func And[W Word](a, b *BitSet[W]) *BitSet[W] {
	c := a.Clone()
	c.And(b)
	return c
}

// Or returns the union of two same-capacity sets.
func Or[W Word](a, b *BitSet[W]) *BitSet[W] {
	c := a.Clone()
	c.Or(b)
	return c
}

// Xor returns the symmetric difference of two same-capacity sets.
func Xor[W Word](a, b *BitSet[W]) *BitSet[W] {
	c := a.Clone()
	c.Xor(b)
	return c
}

// clearPadding zeroes the bit positions at or above the capacity in
// the final word, restoring the padding invariant.
func (b *BitSet[W]) clearPadding() {
	if len(b.words) == 0 {
		return
	}
	b.words[len(b.words)-1] &= b.topMask
}
