package bitset

import (
	"errors"
	"fmt"
)

var (
	// ErrNilText is returned when a nil text slice is passed to a bulk
	// set or decode entry point.
	ErrNilText = errors.New("bitset: nil text")
)

// ErrTypeTooSmall indicates that an integral extraction target cannot
// represent all stored words.
type ErrTypeTooSmall struct {
	TypeBits   int
	StoredBits int
}

func (e *ErrTypeTooSmall) Error() string {
	return fmt.Sprintf("bitset: type too small: %d-bit target, %d stored bits", e.TypeBits, e.StoredBits)
}

// ErrOverflow indicates that an integral extraction found set bits
// beyond the target type's range.
type ErrOverflow struct {
	// WordIndex is the index of the first offending storage word.
	WordIndex int
}

func (e *ErrOverflow) Error() string {
	return fmt.Sprintf("bitset: overflow: non-zero bits in word %d beyond target range", e.WordIndex)
}
