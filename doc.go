// Package arclib is a small library of systems building blocks for Go.
//
// It collects containers and concurrency helpers that tend to get
// rewritten in every project:
//
//   - bitfield: an owning, resizable bit container with reference-like
//     bit handles
//   - optvec: a growable sequence whose slots are independently present
//     or vacant, backed by a contiguous slab and a presence bitmap
//   - workerpool: a fixed-width worker pool with a FIFO job queue and a
//     parallel-range helper
//   - resource: cooperative memory, concurrency and throughput limiting
//   - vecmath: 2D/3D vector algebra and axis-aligned rectangles
//   - random: a seedable PRNG facade
//   - verify: precondition assertions with call-site reporting
//
// The containers are not thread-safe; they are meant to be owned by one
// goroutine or externally synchronized. The worker pool and the
// resource controller are internally synchronized.
//
// The root package only carries the shared structured logger. Everything
// else lives in its own package so callers import exactly what they use.
package arclib
