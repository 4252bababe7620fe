package workerpool

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_CompletesAllJobs(t *testing.T) {
	// 4 workers, 1000 jobs, every job observed exactly once by the
	// time Wait returns.
	p := New()
	p.Start(4)
	defer p.Terminate()

	var counter atomic.Int64
	for i := 0; i < 1000; i++ {
		p.EnqueueJob(func() {
			counter.Add(1)
		})
	}

	require.NoError(t, p.Wait())
	assert.Equal(t, int64(1000), counter.Load())
}

func TestPool_FIFOOrder(t *testing.T) {
	// A single worker consumes the queue strictly in submission order.
	p := New()
	p.Start(1)
	defer p.Terminate()

	var got []int
	for i := 0; i < 100; i++ {
		p.EnqueueJob(func() {
			got = append(got, i)
		})
	}

	require.NoError(t, p.Wait())
	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v, "job order must match submission order")
	}
}

func TestPool_EnqueueBeforeStart(t *testing.T) {
	p := New()

	var counter atomic.Int64
	for i := 0; i < 3; i++ {
		p.EnqueueJob(func() {
			counter.Add(1)
		})
	}
	assert.Equal(t, int64(0), counter.Load(), "no workers yet")

	p.Start(2)
	require.NoError(t, p.Wait())
	assert.Equal(t, int64(3), counter.Load())
	p.Terminate()
}

func TestPool_WaitWithNoJobs(t *testing.T) {
	p := New()
	p.Start(2)
	defer p.Terminate()

	assert.NoError(t, p.Wait())
}

func TestPool_TerminateAbandonsQueuedJobs(t *testing.T) {
	p := New()
	p.Start(1)

	started := make(chan struct{})
	gate := make(chan struct{})
	p.EnqueueJob(func() {
		close(started)
		<-gate
	})

	var abandoned atomic.Int64
	for i := 0; i < 5; i++ {
		p.EnqueueJob(func() {
			abandoned.Add(1)
		})
	}

	<-started
	go func() {
		time.Sleep(20 * time.Millisecond)
		close(gate)
	}()

	// Terminate joins the executing job but never runs the queued ones.
	p.Terminate()
	assert.Equal(t, int64(0), abandoned.Load())

	// The pool accounts for the discarded jobs: Wait must not block.
	assert.NoError(t, p.Wait())
}

func TestPool_FinishDrainsQueue(t *testing.T) {
	p := New()
	p.Start(2)

	var counter atomic.Int64
	for i := 0; i < 50; i++ {
		p.EnqueueJob(func() {
			counter.Add(1)
		})
	}

	require.NoError(t, p.Finish())
	assert.Equal(t, int64(50), counter.Load())
}

func TestPool_TerminateIsIdempotent(t *testing.T) {
	p := New()
	p.Start(2)
	p.Terminate()
	assert.NotPanics(t, func() { p.Terminate() })
}

func TestPool_NumWorkers(t *testing.T) {
	p := New()
	assert.Equal(t, 0, p.NumWorkers())

	p.Start(7)
	assert.Equal(t, 7, p.NumWorkers())
	p.Terminate()
}

func TestPool_JobPanicSurfacesOnWait(t *testing.T) {
	p := New()
	p.Start(2)
	defer p.Terminate()

	var counter atomic.Int64
	p.EnqueueJob(func() {
		panic("job exploded")
	})
	p.EnqueueJob(func() {
		counter.Add(1)
	})

	err := p.Wait()
	require.Error(t, err)

	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "job exploded", pe.Value)
	assert.NotEmpty(t, pe.Stack)

	// Failures are drained by Wait and panicking jobs still count as
	// completed: the pool keeps working.
	assert.Equal(t, int64(1), counter.Load())
	assert.NoError(t, p.Wait())
}

func TestPool_ZeroWorkers(t *testing.T) {
	// Accepted but never executed until terminated.
	p := New()
	p.Start(0)

	var counter atomic.Int64
	p.EnqueueJob(func() {
		counter.Add(1)
	})

	p.Terminate()
	assert.Equal(t, int64(0), counter.Load())
	assert.NoError(t, p.Wait())
}

func TestPool_Preconditions(t *testing.T) {
	p := New()
	p.Start(1)
	defer p.Terminate()

	assert.Panics(t, func() { p.Start(1) }, "start twice")
	assert.Panics(t, func() { p.EnqueueJob(nil) }, "nil job")

	q := New()
	q.Start(1)
	q.Terminate()
	assert.Panics(t, func() { q.EnqueueJob(func() {}) }, "enqueue after terminate")
}
