package utils

import (
	"sync"
)

// WorkerPool runs a fixed number of workers over the same body. Each worker
// drains the shared TaskQueue until it reports empty, so worker lifetime is
// bounded by queue drain time rather than an external stop signal.
type WorkerPool struct {
	workers   int
	waitGroup sync.WaitGroup
}

// NewWorkerPool starts the given number of workers, each executing body
// until it returns.
func NewWorkerPool(workers int, body func()) *WorkerPool {
	pool := &WorkerPool{
		workers: workers,
	}

	pool.waitGroup.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer pool.waitGroup.Done()
			body()
		}()
	}

	return pool
}

// Join waits for every worker to exit.
func (wp *WorkerPool) Join() {
	wp.waitGroup.Wait()
}
