package bitengine

// ShiftLeft shifts the bit pattern towards higher positions, discarding
// bits pushed past the top of the buffer and zero-filling vacated low
// positions. The caller guards shift < totalBits and re-applies its
// padding mask afterwards.
func ShiftLeft[W Word](buf []W, shift uint) {
	w := BitsPerWord[W]()

	// Word-multiple shifts degenerate to a whole-word move.
	if shift%w == 0 {
		words := int(shift / w)
		copy(buf[words:], buf[:len(buf)-words])
		clear(buf[:words])
		return
	}

	// Each source word splits at this bit offset into a low part that
	// lands in the next destination word and a high part that stays.
	split := w - shift%w

	src := len(buf) - int(shift/w) - 1
	dst := len(buf) - 1

	lsbShift := w - split
	msbShift := split
	lsbMask := ^W(0) >> (w - split)
	msbMask := ^lsbMask
	lsbShiftedMask := lsbMask << lsbShift

	// Walk right-to-left so no source word is overwritten before read.
	buf[dst] = (buf[src] & lsbMask) << lsbShift
	src--

	for src >= 0 {
		buf[dst] |= (buf[src] & msbMask) >> msbShift
		dst--
		buf[dst] = (buf[src] & lsbMask) << lsbShift
		src--
	}

	// Zero the vacated positions: partially in the boundary word, then
	// whole words below it.
	buf[dst] &= lsbShiftedMask
	dst--
	for dst >= 0 {
		buf[dst] = 0
		dst--
	}
}

// ShiftRight shifts the bit pattern towards lower positions, discarding
// bits pushed past position 0 and zero-filling vacated high positions.
// The caller guards shift < totalBits. No padding re-mask is needed: a
// right shift cannot move bits into padding positions.
func ShiftRight[W Word](buf []W, shift uint) {
	w := BitsPerWord[W]()

	if shift%w == 0 {
		words := int(shift / w)
		copy(buf, buf[words:])
		clear(buf[len(buf)-words:])
		return
	}

	split := shift % w

	src := int(shift / w)
	dst := 0

	lsbShift := w - split
	msbShift := split
	lsbMask := ^W(0) >> (w - split)
	msbMask := ^lsbMask
	msbShiftedMask := msbMask >> msbShift

	// Walk left-to-right, pairing each word's high part with the next
	// word's low part.
	for src < len(buf)-1 {
		msb := (buf[src] & msbMask) >> msbShift
		src++
		lsb := (buf[src] & lsbMask) << lsbShift
		buf[dst] = lsb | msb
		dst++
	}

	// Final source word contributes its high part only.
	buf[dst] = (buf[src] & msbMask) >> msbShift
	buf[dst] &= msbShiftedMask
	dst++
	for dst < len(buf) {
		buf[dst] = 0
		dst++
	}
}
