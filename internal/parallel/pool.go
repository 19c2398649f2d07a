// Package parallel runs independent dithering jobs on a fixed set of workers.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Job is one unit of work. Jobs must not share mutable state.
type Job func(ctx context.Context) error

// WorkerPool is a fixed pool of goroutines pulling jobs from a shared queue.
//
// Thread safety: WorkerPool is safe for concurrent use, but batches submitted
// from different goroutines interleave on the same workers.
type WorkerPool struct {
	workers int
	queue   chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// submitMu keeps Close from shutting the workers down while a Run is
	// still enqueueing.
	submitMu sync.RWMutex
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), workers*2),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			p.drain()
			return
		case fn := <-p.queue:
			fn()
		}
	}
}

// drain runs whatever is still queued so that no Run is left waiting.
func (p *WorkerPool) drain() {
	for {
		select {
		case fn := <-p.queue:
			fn()
		default:
			return
		}
	}
}

// Run executes every job and waits for all of them. The returned slice has
// one entry per job, in submission order; nil means the job succeeded.
//
// Jobs not yet started when ctx is cancelled, or when the pool is closed,
// report the context error (or context.Canceled) without running.
func (p *WorkerPool) Run(ctx context.Context, jobs []Job) []error {
	errs := make([]error, len(jobs))
	if len(jobs) == 0 {
		return errs
	}

	var wg sync.WaitGroup
	wg.Add(len(jobs))

	p.submitMu.RLock()
	for i, job := range jobs {
		run := func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			errs[i] = job(ctx)
		}

		if !p.running.Load() {
			errs[i] = context.Canceled
			wg.Done()
			continue
		}

		p.queue <- run
	}
	p.submitMu.RUnlock()

	wg.Wait()
	return errs
}

// Close stops the workers after their current job. Close is safe to call
// multiple times.
func (p *WorkerPool) Close() {
	p.submitMu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.submitMu.Unlock()
		return
	}
	close(p.done)
	p.submitMu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
