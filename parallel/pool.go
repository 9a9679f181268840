// Package parallel runs independent jobs on a fixed number of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Pool is a bounded worker pool. With a single worker jobs run inline on the
// caller's goroutine.
type Pool struct {
	workers int
	work    chan func()
	wg      sync.WaitGroup
	stop    func()
}

// Start launches numWorkers goroutines; values below 1 mean GOMAXPROCS.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{workers: numWorkers, stop: func() {}}
	if numWorkers == 1 {
		return p
	}

	p.work = make(chan func(), numWorkers)
	for range numWorkers {
		p.wg.Go(func() {
			for f := range p.work {
				f()
			}
		})
	}
	p.stop = sync.OnceFunc(func() { close(p.work) })

	return p
}

func (p *Pool) Workers() int {
	return p.workers
}

// Do queues f, blocking while all workers are busy and the queue is full.
// Do must not be called after Wait, nor from inside a job.
func (p *Pool) Do(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Wait stops accepting jobs and blocks until every queued job has finished.
// It is safe to call more than once.
func (p *Pool) Wait() {
	p.stop()
	p.wg.Wait()
}
