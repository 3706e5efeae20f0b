package jobs

import "sync"

// Job is a unit of work executed by the pool.
type Job interface {
	Run()
}

// pending pairs a job with the fence of the batch it belongs to
type pending struct {
	job   Job
	fence *Counter
}

// queue is a FIFO of pending jobs guarded by a read-write mutex so workers
// can poll emptiness without contending with each other.
type queue struct {
	mutex sync.RWMutex
	items []pending
}

// push appends a job to the back of the queue
func (q *queue) push(p pending) {
	q.mutex.Lock()
	q.items = append(q.items, p)
	q.mutex.Unlock()
}

// pop removes the job at the front of the queue, if any
func (q *queue) pop() (pending, bool) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	if len(q.items) == 0 {
		return pending{}, false
	}
	p := q.items[0]
	q.items = q.items[1:]
	return p, true
}

// empty reports whether the queue holds no jobs
func (q *queue) empty() bool {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return len(q.items) == 0
}

// length returns the number of queued jobs
func (q *queue) length() int {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return len(q.items)
}
