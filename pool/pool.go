// ABOUTME: Context-aware worker pool fanning independent per-board jobs out across CPUs
// ABOUTME: Backs parallel fitness scoring of a population and concurrent piece-database parsing

// Package pool runs batches of independent jobs across one worker goroutine
// per CPU, under a context that stops dispatch when the run is canceled.
// Its two users submit jobs that never share state: fitness scoring writes
// only to its own board, and a piece-database parse writes only to its own
// result index, so Wait is the only synchronization point needed.
package pool

import (
	"context"
	"runtime"
	"sync"
)

// Pool owns a fixed set of worker goroutines and a bounded job queue. Once
// its context is canceled, queued jobs drain without running so Wait still
// unblocks and the caller can return its best-effort result.
type Pool struct {
	ctx      context.Context
	jobs     chan func()
	workers  sync.WaitGroup
	inflight sync.WaitGroup
}

// New starts one worker per CPU with room for buffer queued jobs. Size the
// buffer to the batch the pool will serve (a population of boards, a
// directory of candidate files) so Submit never blocks mid-batch.
func New(ctx context.Context, buffer int) *Pool {
	p := &Pool{ctx: ctx, jobs: make(chan func(), buffer)}

	for range runtime.NumCPU() {
		p.workers.Add(1)

		go p.work()
	}

	return p
}

func (p *Pool) work() {
	defer p.workers.Done()

	for job := range p.jobs {
		// Cancellation mid-batch skips the job body but still settles its
		// accounting, so a Wait in flight unblocks promptly instead of
		// grinding through the rest of a population.
		if p.ctx.Err() == nil {
			job()
		}

		p.inflight.Done()
	}
}

// Submit queues job for execution. Blocks if the queue is full. A job
// submitted after cancellation is counted by Wait but never run.
func (p *Pool) Submit(job func()) {
	p.inflight.Add(1)
	p.jobs <- job
}

// Wait blocks until every submitted job has either run or been skipped due
// to cancellation.
func (p *Pool) Wait() {
	p.inflight.Wait()
}

// Close stops the workers once the queue drains. The pool cannot be reused
// afterwards.
func (p *Pool) Close() {
	close(p.jobs)
	p.workers.Wait()
}
