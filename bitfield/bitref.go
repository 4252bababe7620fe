package bitfield

// Bit is a writable reference-like handle to one bit of a Bitfield. It
// captures the container and a bit index; copying a Bit copies the
// handle, so both copies alias the same bit. A Bit does not own storage
// and is invalidated when the container resizes below its index or is
// released.
type Bit struct {
	field *Bitfield
	idx   uint64
}

// Read returns the referenced bit.
func (r Bit) Read() bool {
	return r.field.Test(r.idx)
}

// Write sets the referenced bit to v.
func (r Bit) Write(v bool) {
	r.field.SetTo(r.idx, v)
}

// Toggle flips the referenced bit.
func (r Bit) Toggle() {
	r.field.Flip(r.idx)
}

// CopyFrom writes the bit value referenced by other into the bit
// referenced by r. The handles keep aliasing their own bits.
func (r Bit) CopyFrom(other Bit) {
	r.Write(other.Read())
}

// Const converts the writable handle into a read-only one addressing
// the same bit.
func (r Bit) Const() ConstBit {
	return ConstBit{field: r.field, idx: r.idx}
}

// ConstBit is a read-only reference-like handle to one bit of a
// Bitfield. It is constructible from a Bit but offers no mutation.
type ConstBit struct {
	field *Bitfield
	idx   uint64
}

// Read returns the referenced bit.
func (r ConstBit) Read() bool {
	return r.field.Test(r.idx)
}
