package bitset

type options struct {
	without8BitWords  bool
	without64BitWords bool
}

// Option configures word-width selection for New and WordBitsFor.
type Option func(*options)

// Without8BitWords excludes 8-bit storage words from selection, for
// targets where byte-wide integer access is unavailable or undesired.
// Selection then starts at 16-bit words.
func Without8BitWords() Option {
	return func(o *options) {
		o.without8BitWords = true
	}
}

// Without64BitWords excludes 64-bit storage words from selection, for
// targets without native 64-bit integer support. Selection then stops
// at 32-bit words.
func Without64BitWords() Option {
	return func(o *options) {
		o.without64BitWords = true
	}
}

// WordBitsFor returns the storage word width, in bits, that a capacity
// of nbits selects: the narrowest enabled width whose single word holds
// all bits, or the multi-word fallback width when none does. A capacity
// of 0 selects no storage and returns 0.
func WordBitsFor(nbits int, opts ...Option) int {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if nbits <= 0 {
		return 0
	}

	switch {
	case nbits <= 8 && !o.without8BitWords:
		return 8
	case nbits <= 16:
		return 16
	case nbits <= 32:
		return 32
	case nbits <= 64 && !o.without64BitWords:
		return 64
	}

	// Multi-word fallback: narrow words so word count scales with the
	// capacity, not past it.
	if o.without8BitWords {
		return 16
	}
	return 8
}

// Interface is the width-independent operation surface shared by every
// BitSet instantiation. Binary combination, Swap, Clone and the raw
// word view stay on the concrete generic type, where shape
// compatibility is checked at compile time.
type Interface interface {
	Size() int
	WordBits() int

	Test(pos uint) bool
	Set(pos uint)
	SetTo(pos uint, value bool)
	Unset(pos uint)
	Flip(pos uint)
	SetAll()
	ClearAll()
	FlipAll()
	SetValue(v uint64)
	SetString(text string)
	SetBytes(text []byte) error
	SetRunes(text []rune) error
	SetUTF16(text []uint16) error

	Count() int
	All() bool
	None() bool
	Any() bool
	FindFirst(state bool) uint
	FindNext(state bool, from uint) uint

	ShiftLeft(n uint)
	ShiftRight(n uint)

	Uint8() (uint8, error)
	Uint16() (uint16, error)
	Uint32() (uint32, error)
	Uint64() (uint64, error)
	String() string
	Format(zero, one rune) string
	MarshalText() ([]byte, error)
	UnmarshalText(text []byte) error
}

// New creates a zeroed bit set with the given capacity, backed by the
// word width WordBitsFor selects. New panics if nbits is negative.
func New(nbits int, opts ...Option) Interface {
	if nbits < 0 {
		panic("bitset: negative capacity")
	}
	switch WordBitsFor(nbits, opts...) {
	case 0:
		return Of[uint8](0)
	case 8:
		return Of[uint8](nbits)
	case 16:
		return Of[uint16](nbits)
	case 32:
		return Of[uint32](nbits)
	default:
		return Of[uint64](nbits)
	}
}
