// Package jacobi: fixed fork-join worker pool for the parallel solver.
// One pool lives for exactly one Parallel call: goroutines are spawned once,
// reused for every phase of every iteration, and released on close. Each
// phase is a full barrier (run returns only after all chunks completed), the
// synchronization contract the iteration loop is built on.

package jacobi

import "sync"

// workItem is one contiguous-chunk task dispatched to the pool.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// pool is a fixed set of persistent workers consuming workItems.
type pool struct {
	workers int
	workC   chan workItem
}

// newPool spawns exactly `workers` goroutines (caller validates workers > 0).
func newPool(workers int) *pool {
	p := &pool{
		workers: workers,
		// Buffered so the dispatcher never blocks mid-phase on a busy worker.
		workC: make(chan workItem, workers),
	}
	var w int
	for w = 0; w < workers; w++ {
		go p.work()
	}
	return p
}

// work is the persistent worker loop: execute a chunk, hit the barrier, repeat.
func (p *pool) work() {
	var item workItem
	for item = range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// close releases the workers. Pending items still complete.
func (p *pool) close() {
	close(p.workC)
}

// chunkSize returns the contiguous block length ceil(n / workers).
func (p *pool) chunkSize(n int) int {
	return (n + p.workers - 1) / p.workers
}

// numChunks returns how many non-empty blocks cover [0, n). Always in
// [1, workers]: when workers > n the trailing workers receive no block at
// all, so every dispatched chunk is non-empty and owns a distinct slot.
func (p *pool) numChunks(n int) int {
	chunk := p.chunkSize(n)
	return (n + chunk - 1) / chunk
}

// run executes fn over [0, n) partitioned into static contiguous chunks, one
// per worker, and blocks until every chunk finished: a full join barrier.
// fn receives (k, start, end) where k is the chunk index in [0, numChunks(n))
// — the slot identity for per-worker accumulators — and [start, end) is the
// owned row range. The chunk→range mapping is fixed by n and the worker
// count, independent of goroutine scheduling.
func (p *pool) run(n int, fn func(k, start, end int)) {
	chunk := p.chunkSize(n)

	var wg sync.WaitGroup
	var start, end int
	for start = 0; start < n; start += chunk {
		end = start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		k, s, e := start/chunk, start, end // pin chunk identity for the closure
		p.workC <- workItem{
			fn:      func() { fn(k, s, e) },
			barrier: &wg,
		}
	}

	wg.Wait()
}
