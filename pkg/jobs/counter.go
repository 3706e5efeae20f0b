package jobs

import "sync"

// Counter is a counting fence shared by a batch of dispatched jobs. It is
// initialized to the batch size, decremented exactly once per finished job
// and waited on by the dispatcher. Waiting at a non-zero target lets a
// pipelined caller resume once the backlog drains below a watermark.
type Counter struct {
	mutex sync.Mutex
	cond  *sync.Cond
	count int
}

// NewCounter creates a counter initialized to the given value
func NewCounter(count int) *Counter {
	c := &Counter{count: count}
	c.cond = sync.NewCond(&c.mutex)
	return c
}

// Add raises the counter by n
func (c *Counter) Add(n int) {
	c.mutex.Lock()
	c.count += n
	c.mutex.Unlock()
}

// Decrement lowers the counter by one and wakes all waiters
func (c *Counter) Decrement() {
	c.mutex.Lock()
	c.count--
	c.mutex.Unlock()
	c.cond.Broadcast()
}

// Value returns the current count
func (c *Counter) Value() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.count
}

// Wait blocks until the count drops to the target or below. Wait(0) waits
// for the whole batch.
func (c *Counter) Wait(target int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	for c.count > target {
		c.cond.Wait()
	}
}
