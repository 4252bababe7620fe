// Package optvec implements a growable sequence whose slots are
// independently present or vacant.
//
// An OptVector stores values in a contiguous slab of capacity cells and
// tracks liveness in a parallel presence bitmap (a bitfield.Bitfield).
// Erasing a slot leaves it vacant in place: the size is unchanged and no
// neighbor moves, so slot indices are stable identities. Appending always
// produces a present slot at index Len().
//
// Capacity starts at 8 and grows by a factor of 1.5, rounded up to the
// next multiple of 8 so the presence bitmap resizes on byte boundaries.
// Growth preserves the position and presence of every slot.
//
// An OptVector is not safe for concurrent use. Slot handles and
// iterators are invalidated by any operation that may grow storage.
package optvec

import (
	"fmt"
	"unsafe"

	"github.com/pchen2215/arclib/bitfield"
	"github.com/pchen2215/arclib/resource"
	"github.com/pchen2215/arclib/verify"
)

const (
	initialCapacity = 8
	growFactor      = 1.5
)

// OptVector is an ordered sequence of present-or-vacant slots of T.
type OptVector[T any] struct {
	data []T // slab; len(data) == capacity, cells live iff mask bit set
	mask *bitfield.Bitfield
	size uint64
	ctrl *resource.Controller
}

// Option configures an OptVector constructor.
type Option func(*options)

type options struct {
	ctrl *resource.Controller
}

// WithController makes the container account slab memory against the
// given resource controller. Operations that would grow storage beyond
// the controller's memory limit fail with
// resource.ErrMemoryLimitExceeded and leave the container untouched.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.ctrl = c
	}
}

// New creates an empty OptVector with capacity 0.
func New[T any](opts ...Option) *OptVector[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &OptVector[T]{
		mask: bitfield.New(),
		ctrl: o.ctrl,
	}
}

// Slot is a presence-aware handle to one slot: a pointer to the storage
// cell and a read-only reference to its presence bit. The cell content
// is meaningful only while the presence bit is set. The handle aliases
// container storage and is invalidated by growth.
type Slot[T any] struct {
	Value  *T
	HasVal bitfield.ConstBit
}

// Present reports whether the slot currently holds a value.
func (s Slot[T]) Present() bool {
	return s.HasVal.Read()
}

// Get returns the slot's value pointer. Calling Get on a vacant slot is
// a precondition violation.
func (s Slot[T]) Get() *T {
	verify.Verify(s.Present(), "access to vacant slot")
	return s.Value
}

// Len returns the number of logical slots, present and vacant alike.
func (v *OptVector[T]) Len() uint64 {
	return v.size
}

// Cap returns the number of slots for which storage is reserved.
func (v *OptVector[T]) Cap() uint64 {
	return uint64(len(v.data))
}

// Empty reports whether the container has no slots.
func (v *OptVector[T]) Empty() bool {
	return v.size == 0
}

// At returns a presence-aware handle to slot i.
func (v *OptVector[T]) At(i uint64) Slot[T] {
	verify.Verifyf(i < v.size, "slot index %d out of range [0, %d)", i, v.size)
	return Slot[T]{Value: &v.data[i], HasVal: v.mask.ConstAt(i)}
}

// Reserve grows storage so at least capacity slots fit without another
// allocation. It never shrinks and never changes Len or slot contents.
func (v *OptVector[T]) Reserve(capacity uint64) error {
	if capacity <= v.Cap() {
		return nil
	}
	return v.grow(capacity)
}

// Push appends a present slot holding val at index Len().
func (v *OptVector[T]) Push(val T) error {
	if v.size == v.Cap() {
		next := v.Cap() + (v.Cap()+1)/2 // ceil(capacity * growFactor)
		if next < initialCapacity {
			next = initialCapacity
		}
		if err := v.grow(next); err != nil {
			return err
		}
	}

	v.data[v.size] = val
	v.mask.Set(v.size)
	v.size++
	return nil
}

// Insert stores val at slot i, destroying any value already present
// there and marking the slot present. Insert at i == Len() is
// equivalent to Push. The size never changes except through the Push
// case.
func (v *OptVector[T]) Insert(i uint64, val T) error {
	if i == v.size {
		return v.Push(val)
	}

	verify.Verifyf(i < v.size, "insert index %d out of range [0, %d]", i, v.size)
	v.data[i] = val
	v.mask.Set(i)
	return nil
}

// Erase destroys the value at slot i if one is present and leaves the
// slot vacant in place. The size is unchanged and no other slot moves.
func (v *OptVector[T]) Erase(i uint64) {
	verify.Verifyf(i < v.size, "erase index %d out of range [0, %d)", i, v.size)
	v.destructSlot(i)
}

// EraseRange erases every slot in [start, stop) in order.
func (v *OptVector[T]) EraseRange(start, stop uint64) {
	verify.Verifyf(start <= stop && stop <= v.size,
		"erase range [%d, %d) invalid for size %d", start, stop, v.size)
	for i := start; i < stop; i++ {
		v.destructSlot(i)
	}
}

// Pop removes the last slot, destroying its value if present, and
// decrements the size.
func (v *OptVector[T]) Pop() {
	verify.Verify(v.size > 0, "pop from empty optvec")
	v.destructSlot(v.size - 1)
	v.size--
}

// Clear destroys every present value and resets the size to zero.
// Capacity is retained. The presence bitmap is not rewritten: inserts
// always set a slot's bit before it becomes observable again.
func (v *OptVector[T]) Clear() {
	var zero T
	for i := uint64(0); i < v.size; i++ {
		if v.mask.Test(i) {
			v.data[i] = zero
		}
	}
	v.size = 0
}

// Clone returns a deep copy: equal size, equal per-slot presence and
// per-present-slot values. The clone accounts against the same resource
// controller as the source.
func (v *OptVector[T]) Clone() (*OptVector[T], error) {
	out := &OptVector[T]{
		mask: bitfield.New(),
		ctrl: v.ctrl,
	}
	if v.Cap() == 0 {
		out.size = v.size
		return out, nil
	}

	if err := v.ctrl.AcquireMemory(slabBytes[T](v.Cap())); err != nil {
		return nil, fmt.Errorf("optvec: clone %d slots: %w", v.Cap(), err)
	}
	out.data = make([]T, v.Cap())
	out.mask = v.mask.Clone()
	out.size = v.size
	for i := uint64(0); i < v.size; i++ {
		if v.mask.Test(i) {
			out.data[i] = v.data[i]
		}
	}
	return out, nil
}

// grow reallocates the slab to hold at least minCap slots, rounded up
// to the next multiple of 8, moving present values and resizing the
// presence bitmap to cover the new capacity. On failure the container
// is untouched.
func (v *OptVector[T]) grow(minCap uint64) error {
	newCap := (minCap + 7) &^ 7
	verify.Verifyf(newCap >= v.Cap(), "grow to %d below capacity %d", newCap, v.Cap())

	if err := v.ctrl.AcquireMemory(slabBytes[T](newCap)); err != nil {
		return fmt.Errorf("optvec: grow to %d slots: %w", newCap, err)
	}

	var zero T
	newData := make([]T, newCap)
	for i := uint64(0); i < v.size; i++ {
		if v.mask.Test(i) {
			newData[i] = v.data[i]
			v.data[i] = zero // release the moved-from cell
		}
	}
	v.ctrl.ReleaseMemory(slabBytes[T](v.Cap()))
	v.data = newData
	v.mask.Resize(newCap)
	return nil
}

// destructSlot drops the value at slot i if present and marks the slot
// vacant.
func (v *OptVector[T]) destructSlot(i uint64) {
	if v.mask.Test(i) {
		var zero T
		v.data[i] = zero
		v.mask.Unset(i)
	}
}

func slabBytes[T any](slots uint64) int64 {
	var zero T
	return int64(slots) * int64(unsafe.Sizeof(zero))
}
