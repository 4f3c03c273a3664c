package utils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTaskQueue_FIFO verifies ordering and the non-blocking empty pop.
func TestTaskQueue_FIFO(t *testing.T) {
	queue := NewTaskQueue()
	queue.Enqueue("a")
	queue.Enqueue("b")

	first, ok := queue.TryDequeue()
	assert.True(t, ok)
	assert.Equal(t, "a", first)

	second, ok := queue.TryDequeue()
	assert.True(t, ok)
	assert.Equal(t, "b", second)

	_, ok = queue.TryDequeue()
	assert.False(t, ok)

	queue.TaskDone()
	queue.TaskDone()
	queue.Wait()
}

// TestTaskQueue_BarrierWithPool verifies the completion barrier: with many
// workers draining the queue, Wait returns only after every enqueued task
// has been processed and marked done exactly once.
func TestTaskQueue_BarrierWithPool(t *testing.T) {
	queue := NewTaskQueue()
	const tasks = 200
	for i := 0; i < tasks; i++ {
		queue.Enqueue(fmt.Sprintf("photo-%d", i))
	}

	var processed int64
	pool := NewWorkerPool(4, func() {
		for {
			_, ok := queue.TryDequeue()
			if !ok {
				return
			}
			atomic.AddInt64(&processed, 1)
			queue.TaskDone()
		}
	})

	queue.Wait()
	pool.Join()

	assert.Equal(t, int64(tasks), atomic.LoadInt64(&processed))
	assert.Equal(t, 0, queue.Len())
}

// TestWorkerPool_JoinWaitsForAllWorkers verifies every worker runs and Join
// blocks until all of them exit.
func TestWorkerPool_JoinWaitsForAllWorkers(t *testing.T) {
	var started int64
	pool := NewWorkerPool(8, func() {
		atomic.AddInt64(&started, 1)
	})

	pool.Join()

	assert.Equal(t, int64(8), atomic.LoadInt64(&started))
}
