package utils

import (
	"sync"
)

// TaskQueue is an unbounded FIFO of photo paths shared by all workers.
// Dequeueing never blocks; a worker that sees an empty queue is done. The
// queue also acts as a completion barrier: Wait returns once every enqueued
// task has been marked done exactly once.
type TaskQueue struct {
	mu      sync.Mutex
	tasks   []string
	pending sync.WaitGroup
}

// NewTaskQueue creates an empty TaskQueue.
func NewTaskQueue() *TaskQueue {
	return &TaskQueue{}
}

// Enqueue appends a task and counts it toward the completion barrier.
func (q *TaskQueue) Enqueue(path string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = append(q.tasks, path)
	q.pending.Add(1)
}

// TryDequeue pops the oldest task without blocking. The second return value
// is false when the queue is empty.
func (q *TaskQueue) TryDequeue() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.tasks) == 0 {
		return "", false
	}
	task := q.tasks[0]
	q.tasks = q.tasks[1:]
	return task, true
}

// TaskDone marks one dequeued task as processed. Call it exactly once per
// dequeued task, whether processing succeeded or not.
func (q *TaskQueue) TaskDone() {
	q.pending.Done()
}

// Len returns the number of tasks still waiting to be dequeued.
func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Wait blocks until every enqueued task has been marked done.
func (q *TaskQueue) Wait() {
	q.pending.Wait()
}
