package bitengine

import "math/bits"

// FindFirst returns the position of the first bit in the given state,
// or NotFound.
func FindFirst[W Word](buf []W, totalBits uint, state bool) uint {
	return FindNext(buf, totalBits, state, 0)
}

// FindNext returns the smallest position >= from holding a bit in the
// given state, or NotFound if the scan exhausts the buffer.
//
// Words that cannot contain a match (all-zero when hunting set bits,
// all-ones when hunting clear bits) are skipped whole. The first word's
// skip distance is measured from the in-word offset of the start
// position, so starts that are not word-multiples stay aligned.
func FindNext[W Word](buf []W, totalBits uint, state bool, from uint) uint {
	if from >= totalBits {
		return NotFound
	}

	w := BitsPerWord[W]()
	index := from >> uint(bits.TrailingZeros(w))
	bit := from & (w - 1)
	mask := W(1) << bit
	position := from

	for index < uint(len(buf)) {
		value := buf[index]

		// Can this word contain a match at all?
		if (state && value != 0) || (!state && value != ^W(0)) {
			for bit < w && position < totalBits {
				if (value&mask != 0) == state {
					return position
				}
				mask <<= 1
				position++
				bit++
			}
		} else {
			position += w - bit
		}

		// Later words are scanned from their first bit.
		bit = 0
		mask = 1
		index++
	}

	return NotFound
}
