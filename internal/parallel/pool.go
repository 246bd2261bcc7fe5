// Package parallel provides a work-stealing worker pool used to render
// atlas frames concurrently.
//
// Frames are independent tasks: per-pixel evaluation is pure and each
// frame writes to a disjoint region of the atlas buffer, so tasks need
// no synchronization among themselves.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs frame-rendering tasks across a fixed set of goroutines.
//
// Each worker owns a queue and steals from its siblings when idle. Frames
// of large bodies take much longer than frames of small ones, so stealing
// keeps every worker busy toward the tail of a batch.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds one task queue per worker. A worker pulls from its own
	// queue first and steals from the others when it runs dry.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used. Workers start
// immediately and wait for tasks.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A few buffered slots per worker hide submission latency without
	// holding many frame closures alive at once.
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}

	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(own)
			return

		case task := <-own:
			if task != nil {
				task()
			}

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
			} else {
				// No work anywhere, block on the worker's own queue.
				select {
				case <-p.done:
					p.drain(own)
					return
				case task := <-own:
					if task != nil {
						task()
					}
				}
			}
		}
	}
}

// drain runs all tasks remaining in a queue.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			if task != nil {
				task()
			}
		default:
			return
		}
	}
}

// steal attempts to take a task from another worker's queue.
// Returns nil if every other queue is empty.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}

		select {
		case task := <-p.queues[i]:
			return task
		default:
		}
	}
	return nil
}

// ExecuteAll distributes tasks round-robin across the workers and blocks
// until every task has run. If the pool has been closed the tasks run
// inline on the calling goroutine, so a batch of frames always completes.
func (p *WorkerPool) ExecuteAll(tasks []func()) {
	if len(tasks) == 0 {
		return
	}

	if !p.running.Load() {
		for _, fn := range tasks {
			fn()
		}
		return
	}

	var completion sync.WaitGroup
	completion.Add(len(tasks))

	for i, fn := range tasks {
		workerID := i % p.workers

		wrapped := func() {
			defer completion.Done()
			fn()
		}

		select {
		case p.queues[workerID] <- wrapped:
		case <-p.done:
			// Pool is closing mid-batch; run inline rather than drop a frame.
			wrapped()
		}
	}

	completion.Wait()
}

// Close stops the pool. It waits for queued tasks to finish before
// returning and is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}

	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}
