// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Byte buffers for the bit container are allocated with 64-byte
// alignment so word-at-a-time scans never straddle a cache line.
package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of every allocated buffer (one cache line).
const Alignment = 64

// AllocAligned allocates a zeroed byte slice of the given size with
// 64-byte alignment. The returned slice is guaranteed to start at a
// memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to
// ensure alignment. The underlying array is kept alive by the returned
// slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment so an aligned offset always exists
	// within the buffer.
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// Realloc returns an aligned buffer of exactly size bytes carrying over
// the low bytes of buf. Bytes past len(buf) are zero. Realloc(buf, 0)
// releases the buffer by returning nil. The input buffer is never
// mutated or reused; callers must drop their reference to it.
func Realloc(buf []byte, size int) []byte {
	if size <= 0 {
		return nil
	}
	if size == len(buf) {
		return buf
	}

	next := AllocAligned(size)
	copy(next, buf)
	return next
}
