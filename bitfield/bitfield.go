// Package bitfield implements an owning, resizable bit container.
//
// A Bitfield addresses individual bits inside a byte buffer using
// LSB-first numbering: bit 0 of byte 0 is mask 0x01. Storage is managed
// in whole bytes, so the bit count is always a multiple of 8 and Resize
// only accepts byte-multiple bit counts.
//
// Subscripting yields a reference-like handle (Bit or ConstBit) that
// reads or writes a single bit without exposing the buffer itself. For
// hot paths the container also offers direct Test/Set/Unset/Flip
// methods.
//
// A Bitfield is not safe for concurrent use.
package bitfield

import (
	"github.com/pchen2215/arclib/internal/mem"
	"github.com/pchen2215/arclib/verify"
)

// Bitfield is a bit-addressable byte buffer. The zero value owns no
// storage and is ready to use.
type Bitfield struct {
	field []byte
}

// New creates an empty Bitfield owning no storage.
func New() *Bitfield {
	return &Bitfield{}
}

// NewWithBytes creates a Bitfield owning a zero-initialized buffer of
// the given byte count. NewWithBytes(0) is equivalent to New().
func NewWithBytes(count int) *Bitfield {
	verify.Verifyf(count >= 0, "byte count %d must be non-negative", count)
	return &Bitfield{field: mem.AllocAligned(count)}
}

// Len returns the number of bits contained in the bitfield. It is
// always eight times the owned byte count.
func (b *Bitfield) Len() uint64 {
	return uint64(len(b.field)) * 8
}

// Bytes returns the number of bytes owned by the bitfield.
func (b *Bitfield) Bytes() int {
	return len(b.field)
}

// Resize resizes the bitfield to hold exactly the requested number of
// bits, which must be a multiple of 8. Growing zero-fills the new high
// bits and preserves the rest; shrinking discards the high bytes.
// Resizing to zero releases the buffer.
func (b *Bitfield) Resize(bits uint64) {
	verify.Verifyf(bits%8 == 0, "bit count %d must be a multiple of 8", bits)
	b.field = mem.Realloc(b.field, int(bits/8))
}

// Test returns true if the bit at the given index is set.
func (b *Bitfield) Test(i uint64) bool {
	b.boundsCheck(i)
	return b.field[i/8]&(1<<(i%8)) != 0
}

// Set sets the bit at the given index.
func (b *Bitfield) Set(i uint64) {
	b.boundsCheck(i)
	b.field[i/8] |= 1 << (i % 8)
}

// Unset clears the bit at the given index.
func (b *Bitfield) Unset(i uint64) {
	b.boundsCheck(i)
	b.field[i/8] &^= 1 << (i % 8)
}

// SetTo sets the bit at the given index to the given value.
func (b *Bitfield) SetTo(i uint64, v bool) {
	if v {
		b.Set(i)
	} else {
		b.Unset(i)
	}
}

// Flip toggles the bit at the given index.
func (b *Bitfield) Flip(i uint64) {
	b.boundsCheck(i)
	b.field[i/8] ^= 1 << (i % 8)
}

// At returns a writable handle to the bit at the given index. The
// handle aliases the container's storage and must not outlive it.
func (b *Bitfield) At(i uint64) Bit {
	b.boundsCheck(i)
	return Bit{field: b, idx: i}
}

// ConstAt returns a read-only handle to the bit at the given index.
func (b *Bitfield) ConstAt(i uint64) ConstBit {
	b.boundsCheck(i)
	return ConstBit{field: b, idx: i}
}

// Clone returns a deep copy of the bitfield.
func (b *Bitfield) Clone() *Bitfield {
	if len(b.field) == 0 {
		return &Bitfield{}
	}
	field := mem.AllocAligned(len(b.field))
	copy(field, b.field)
	return &Bitfield{field: field}
}

// Equal reports whether two bitfields own the same number of bytes with
// identical contents.
func (b *Bitfield) Equal(other *Bitfield) bool {
	if len(b.field) != len(other.field) {
		return false
	}
	for i, v := range b.field {
		if other.field[i] != v {
			return false
		}
	}
	return true
}

func (b *Bitfield) boundsCheck(i uint64) {
	verify.Verifyf(i < b.Len(), "bit index %d out of range [0, %d)", i, b.Len())
}
