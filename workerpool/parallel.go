package workerpool

import (
	"github.com/pchen2215/arclib/verify"
)

// RunOption configures RunInParallel.
type RunOption func(*runOptions)

type runOptions struct {
	scheduleFactor uint64
	minChunkSize   uint64
}

// WithScheduleFactor multiplies the worker count to determine the
// target number of chunks. Keep the default of 1 when every element
// costs about the same; raise it when element cost varies so idle
// workers can steal ahead in the queue. Must be at least 1.
func WithScheduleFactor(factor uint64) RunOption {
	return func(o *runOptions) {
		o.scheduleFactor = factor
	}
}

// WithMinChunkSize sets the smallest number of elements a single job
// will process. Raise it when the range is small or fn is cheap so
// scheduling overhead does not dominate. Must be at least 1.
func WithMinChunkSize(size uint64) RunOption {
	return func(o *runOptions) {
		o.minChunkSize = size
	}
}

// RunInParallel applies fn to every element of s using the pool,
// blocking until all processing is complete. The slice is partitioned
// into consecutive chunks, each submitted as one job; within a chunk fn
// runs in increasing index order, while chunk order across workers is
// unspecified. Each element is visited exactly once.
//
// Ranges no larger than one chunk are processed inline on the calling
// thread without touching the pool. fn must be safe to call from
// multiple goroutines; elementwise side effects on disjoint positions
// are the caller's responsibility.
//
// RunInParallel waits on the pool, so it returns any job panics the
// pool recorded, and it must not be called from inside a job body.
func RunInParallel[S ~[]E, E any](p *Pool, s S, fn func(*E), opts ...RunOption) error {
	o := runOptions{scheduleFactor: 1, minChunkSize: 1}
	for _, opt := range opts {
		opt(&o)
	}
	verify.Verify(o.scheduleFactor >= 1, "schedule factor must be at least 1")
	verify.Verify(o.minChunkSize >= 1, "min chunk size must be at least 1")

	n := uint64(len(s))
	if n == 0 {
		return nil
	}

	// Aim for scheduleFactor chunks per worker, bounded below by the
	// minimum chunk size. A pool without workers degenerates to inline
	// execution.
	chunkSize := uint64(0)
	if workers := uint64(p.NumWorkers()); workers > 0 {
		chunkSize = n / (o.scheduleFactor * workers)
	}
	if chunkSize < o.minChunkSize {
		chunkSize = o.minChunkSize
	}

	// Small ranges run on the calling thread, in order.
	if n <= chunkSize {
		for i := range s {
			fn(&s[i])
		}
		return nil
	}

	for begin := uint64(0); begin < n; begin += chunkSize {
		end := min(begin+chunkSize, n)
		chunk := s[begin:end]
		p.EnqueueJob(func() {
			for i := range chunk {
				fn(&chunk[i])
			}
		})
	}

	return p.Wait()
}
