// Package workerpool implements a fixed-width worker pool over a FIFO
// job queue, plus a helper that fans a slice out across the pool in
// chunks.
//
// A Pool is constructed idle, started once with Start, fed with
// EnqueueJob and shut down with either Finish (drain the queue first) or
// Terminate (abandon queued jobs; jobs already executing run to
// completion). Wait blocks the caller until every accepted job has
// finished.
//
// Jobs have no error return. A job that panics does not kill the worker:
// the panic is recovered, recorded and surfaced as a *PanicError from
// the next Wait call. Submission is expected to happen from a single
// goroutine (typically the one that started the pool); the pool itself
// is internally synchronized.
package workerpool

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/pchen2215/arclib"
	"github.com/pchen2215/arclib/internal/queue"
	"github.com/pchen2215/arclib/verify"
)

// Job is a unit of work submitted to the pool.
type Job func()

// PanicError wraps a panic recovered from a job body.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("job panicked: %v", e.Value)
}

// Pool is a fixed-width set of worker goroutines sharing one FIFO job
// queue.
type Pool struct {
	mu          sync.Mutex
	workersCond *sync.Cond // job available or shutdown
	waiterCond  *sync.Cond // job count reached zero

	jobs    *queue.FIFO[Job]
	numJobs int // queued + executing; decremented after a job body returns

	running    bool
	started    bool
	terminated bool
	numWorkers int

	wg       sync.WaitGroup
	failures []error

	logger *arclib.Logger
}

// Option configures a Pool constructor.
type Option func(*Pool)

// WithLogger sets the structured logger used for lifecycle and job
// failure events. The default discards all output.
func WithLogger(l *arclib.Logger) Option {
	return func(p *Pool) {
		p.logger = l
	}
}

// New creates an idle pool: no workers, no jobs, not running. Jobs may
// be enqueued before Start; they sit in the queue until workers exist.
func New(opts ...Option) *Pool {
	p := &Pool{
		jobs:   queue.New[Job](16),
		logger: arclib.NoopLogger(),
	}
	p.workersCond = sync.NewCond(&p.mu)
	p.waiterCond = sync.NewCond(&p.mu)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start spawns exactly n worker goroutines and marks the pool running.
// It must be called at most once per pool. n = 0 yields a pool that
// accepts jobs but never runs them.
func (p *Pool) Start(n int) {
	p.mu.Lock()
	verify.Verify(!p.started, "pool started twice")
	verify.Verifyf(n >= 0, "worker count %d must be non-negative", n)

	p.started = true
	p.running = true
	p.numWorkers = n
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	p.mu.Unlock()

	p.logger.Debug("worker pool started", "workers", n)
}

// EnqueueJob appends a job to the queue and wakes one worker. Enqueuing
// after Terminate is a precondition violation; enqueuing before Start is
// allowed and the jobs run once workers exist.
func (p *Pool) EnqueueJob(job Job) {
	verify.Verify(job != nil, "nil job")

	p.mu.Lock()
	verify.Verify(!p.terminated, "enqueue on terminated pool")
	p.jobs.Push(job)
	p.numJobs++
	p.mu.Unlock()

	p.workersCond.Signal()
}

// Wait blocks the caller until every accepted job has completed, then
// returns the panics recorded since the previous Wait, joined into a
// single error (nil if all jobs returned normally).
func (p *Pool) Wait() error {
	p.mu.Lock()
	for p.numJobs != 0 {
		p.waiterCond.Wait()
	}
	failures := p.failures
	p.failures = nil
	p.mu.Unlock()

	return errors.Join(failures...)
}

// Finish waits for the queue to drain, then terminates the pool. It
// returns whatever Wait surfaced.
func (p *Pool) Finish() error {
	err := p.Wait()
	p.Terminate()
	return err
}

// Terminate stops the pool: the running flag is cleared, all workers
// are woken and joined. Jobs still queued are discarded; a job that has
// already begun executing runs to completion. Terminate is idempotent.
func (p *Pool) Terminate() {
	p.mu.Lock()
	p.running = false
	p.terminated = true
	discarded := p.jobs.Len()
	p.numJobs -= discarded
	p.jobs.Clear()
	if p.numJobs == 0 {
		p.waiterCond.Broadcast()
	}
	p.mu.Unlock()

	p.workersCond.Broadcast()
	p.wg.Wait()

	p.logger.Debug("worker pool terminated", "discarded_jobs", discarded)
}

// NumWorkers returns the number of worker goroutines the pool was
// started with.
func (p *Pool) NumWorkers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.numWorkers
}

// work is the worker loop: wait for shutdown or a queued job, run one
// job with the mutex released, then account for its completion. The job
// counter is decremented only after the job body returns.
func (p *Pool) work() {
	defer p.wg.Done()

	p.mu.Lock()
	for {
		for p.running && p.jobs.Len() == 0 {
			p.workersCond.Wait()
		}
		if !p.running {
			p.mu.Unlock()
			return
		}

		job, ok := p.jobs.Pop()
		verify.Verify(ok, "woken with empty queue")
		p.mu.Unlock()

		err := runJob(job)

		p.mu.Lock()
		p.numJobs--
		if err != nil {
			p.failures = append(p.failures, err)
			p.logger.Error("job failed", "error", err)
		}
		if p.numJobs == 0 {
			p.waiterCond.Broadcast()
		}
	}
}

// runJob executes a job body, converting a panic into a *PanicError.
func runJob(job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	job()
	return nil
}
