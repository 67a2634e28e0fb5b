package bitengine

// Char is the set of text code-unit types the decoder accepts:
// UTF-8 bytes, UTF-16 units and runes.
type Char interface {
	~uint8 | ~uint16 | ~int32
}

// SetValue re-initialises the buffer from an unsigned 64-bit value,
// filling words least-significant-first and zeroing the remainder.
// Bits beyond the buffer's capacity are discarded.
func SetValue[W Word](buf []W, v uint64) {
	w := BitsPerWord[W]()

	i := 0
	for v != 0 && i < len(buf) {
		buf[i] = W(v) // truncates to the low W bits
		i++
		v >>= w
	}
	clear(buf[i:])
}

// FromText assigns bits from a textual pattern, most significant bit
// first. A code unit equal to one sets the bit, anything else clears
// it. Whole words beyond what the text can populate are zeroed first;
// if the text is shorter than totalBits, only the low len(text) bits
// are assigned and lower words keep their prior content outside the
// zero-fill pass.
func FromText[W Word, C Char](buf []W, totalBits uint, text []C, one C) {
	if len(buf) == 0 {
		return
	}
	w := BitsPerWord[W]()
	length := uint(len(text))

	index := min(uint(len(buf))-1, length/w)
	for ; index < uint(len(buf)); index++ {
		buf[index] = 0
	}

	i := min(totalBits, length)
	for j := 0; i > 0; j++ {
		i--
		SetTo(buf, i, text[j] == one)
	}
}

// FirstNonZero returns the index of the first non-zero word at or after
// from, or -1 if all such words are zero.
func FirstNonZero[W Word](buf []W, from int) int {
	for i := max(from, 0); i < len(buf); i++ {
		if buf[i] != 0 {
			return i
		}
	}
	return -1
}

// Accumulate ORs each word, shifted into place, into a single unsigned
// 64-bit value. The caller has already verified the result fits.
func Accumulate[W Word](buf []W) uint64 {
	w := BitsPerWord[W]()
	var v uint64
	shift := uint(0)
	for _, word := range buf {
		v |= uint64(word) << shift
		shift += w
	}
	return v
}
