package bitset

import (
	"strings"

	"github.com/labodj/etl/internal/bitengine"
)

// Value extracts the contents of the set as an unsigned integer of
// type T.
//
// It fails with *ErrTypeTooSmall when T is narrower than the allocated
// words, and with *ErrOverflow when the set holds non-zero bits beyond
// what any native 64-bit target can represent. On failure the returned
// value is zero.
func Value[T, W Word](b *BitSet[W]) (T, error) {
	w := int(bitengine.BitsPerWord[W]())

	// Words wholly beyond a 64-bit accumulator must be zero; this
	// guards capacities above 64 bits where the byte size of T rounds
	// up past what it can logically hold.
	if i := bitengine.FirstNonZero(b.words, 64/w); i >= 0 {
		return 0, &ErrOverflow{WordIndex: i}
	}

	typeBits := int(bitengine.BitsPerWord[T]())
	storedBits := len(b.words) * w
	if typeBits < storedBits {
		return 0, &ErrTypeTooSmall{TypeBits: typeBits, StoredBits: storedBits}
	}

	return T(bitengine.Accumulate(b.words)), nil
}

// Uint8 extracts the contents as a uint8.
func (b *BitSet[W]) Uint8() (uint8, error) {
	return Value[uint8](b)
}

// Uint16 extracts the contents as a uint16.
func (b *BitSet[W]) Uint16() (uint16, error) {
	return Value[uint16](b)
}

// Uint32 extracts the contents as a uint32.
func (b *BitSet[W]) Uint32() (uint32, error) {
	return Value[uint32](b)
}

// Uint64 extracts the contents as a uint64.
func (b *BitSet[W]) Uint64() (uint64, error) {
	return Value[uint64](b)
}

// String returns the set as exactly Size() characters, most significant
// bit first, using '1' and '0'.
func (b *BitSet[W]) String() string {
	return b.Format('0', '1')
}

// Format returns the set as exactly Size() characters, most significant
// bit first, using the given glyphs.
func (b *BitSet[W]) Format(zero, one rune) string {
	var sb strings.Builder
	sb.Grow(b.nbits)
	for i := b.nbits; i > 0; i-- {
		if b.Test(uint(i - 1)) {
			sb.WriteRune(one)
		} else {
			sb.WriteRune(zero)
		}
	}
	return sb.String()
}

// SetString assigns bits from a textual pattern read most significant
// bit first, with '1' marking set bits and any other byte clearing
// them.
//
// If the text is longer than the capacity, only its first Size()
// characters are used. If it is shorter, only the low len(text) bits
// are assigned; whole words beyond what the text can populate are
// zeroed first and the rest keep their prior content.
func (b *BitSet[W]) SetString(text string) {
	bitengine.FromText(b.words, uint(b.nbits), []byte(text), '1')
}

// SetBytes assigns bits from a UTF-8 byte pattern with the same rules
// as SetString. A nil slice fails with ErrNilText.
func (b *BitSet[W]) SetBytes(text []byte) error {
	if text == nil {
		return ErrNilText
	}
	bitengine.FromText(b.words, uint(b.nbits), text, '1')
	return nil
}

// SetRunes assigns bits from a rune pattern with the same rules as
// SetString. A nil slice fails with ErrNilText.
func (b *BitSet[W]) SetRunes(text []rune) error {
	if text == nil {
		return ErrNilText
	}
	bitengine.FromText(b.words, uint(b.nbits), text, '1')
	return nil
}

// SetUTF16 assigns bits from a pattern of UTF-16 code units with the
// same rules as SetString. A nil slice fails with ErrNilText.
func (b *BitSet[W]) SetUTF16(text []uint16) error {
	if text == nil {
		return ErrNilText
	}
	bitengine.FromText(b.words, uint(b.nbits), text, '1')
	return nil
}

// MarshalText implements encoding.TextMarshaler using the plain text
// encoding: exactly Size() bytes, most significant bit first.
func (b *BitSet[W]) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the decode
// rules of SetBytes. A nil slice fails with ErrNilText.
func (b *BitSet[W]) UnmarshalText(text []byte) error {
	return b.SetBytes(text)
}
