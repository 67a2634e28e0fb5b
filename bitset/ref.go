package bitset

// Ref is a transient handle to a single bit of a BitSet. It is not
// storage of its own: reads go through Test and writes through SetTo.
// A Ref must not outlive the set it refers to.
type Ref[W Word] struct {
	b   *BitSet[W]
	pos uint
}

// At returns a handle to the bit at pos.
func (b *BitSet[W]) At(pos uint) Ref[W] {
	return Ref[W]{b: b, pos: pos}
}

// Get returns the value of the referenced bit.
func (r Ref[W]) Get() bool {
	return r.b.Test(r.pos)
}

// Set assigns the referenced bit.
func (r Ref[W]) Set(value bool) {
	r.b.SetTo(r.pos, value)
}

// Flip complements the referenced bit.
func (r Ref[W]) Flip() {
	r.b.Flip(r.pos)
}

// Not returns the logical inverse of the referenced bit.
func (r Ref[W]) Not() bool {
	return !r.b.Test(r.pos)
}
