package optvec

import (
	"iter"

	"github.com/pchen2215/arclib/verify"
)

// Iterator addresses a slot index of an OptVector. It is a comparable
// value type: two iterators are equal iff they address the same index of
// the same container. Movement methods return a new iterator, which may
// sit at the one-past-the-end position but never outside [0, Len()].
//
// Iterators are invalidated by any operation that may grow storage.
type Iterator[T any] struct {
	ov  *OptVector[T]
	idx uint64
}

// Begin returns an iterator addressing slot 0.
func (v *OptVector[T]) Begin() Iterator[T] {
	return Iterator[T]{ov: v, idx: 0}
}

// End returns the one-past-the-end iterator.
func (v *OptVector[T]) End() Iterator[T] {
	return Iterator[T]{ov: v, idx: v.size}
}

// Index returns the slot index the iterator addresses.
func (it Iterator[T]) Index() uint64 {
	return it.idx
}

// Next returns an iterator advanced by one slot.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

// Prev returns an iterator moved back by one slot.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Sub(1)
}

// Add returns an iterator advanced by n slots.
func (it Iterator[T]) Add(n uint64) Iterator[T] {
	next := Iterator[T]{ov: it.ov, idx: it.idx + n}
	next.stateCheck()
	return next
}

// Sub returns an iterator moved back by n slots.
func (it Iterator[T]) Sub(n uint64) Iterator[T] {
	verify.Verifyf(n <= it.idx, "iterator moved %d before slot %d", n, it.idx)
	return Iterator[T]{ov: it.ov, idx: it.idx - n}
}

// Slot dereferences the iterator into a presence-aware handle.
// Dereferencing the end iterator is a precondition violation.
func (it Iterator[T]) Slot() Slot[T] {
	verify.Verifyf(it.idx < it.ov.size, "dereference of iterator at %d, size %d", it.idx, it.ov.size)
	return it.ov.At(it.idx)
}

// Value returns the addressed slot's value pointer. The slot must be
// present.
func (it Iterator[T]) Value() *T {
	return it.Slot().Get()
}

func (it Iterator[T]) stateCheck() {
	verify.Verifyf(it.idx <= it.ov.size, "iterator index %d out of range [0, %d]", it.idx, it.ov.size)
}

// All iterates over every slot in [0, Len()), present and vacant alike,
// yielding the index and a presence-aware handle.
func (v *OptVector[T]) All() iter.Seq2[uint64, Slot[T]] {
	return func(yield func(uint64, Slot[T]) bool) {
		for i := uint64(0); i < v.size; i++ {
			if !yield(i, v.At(i)) {
				return
			}
		}
	}
}

// Values iterates over present slots only, yielding the index and the
// value pointer.
func (v *OptVector[T]) Values() iter.Seq2[uint64, *T] {
	return func(yield func(uint64, *T) bool) {
		for i := uint64(0); i < v.size; i++ {
			if v.mask.Test(i) && !yield(i, &v.data[i]) {
				return
			}
		}
	}
}
