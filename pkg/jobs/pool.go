package jobs

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/SimpsonGSD/path-tracer/log"
)

var logger = log.New("jobs")

// Workers spin this many times on an empty queue before parking on the wake
// event. Spinning keeps latency low while tile batches drain; parking keeps
// idle pools off the scheduler.
const spinThreshold = 20

// Pool executes jobs on a fixed set of worker goroutines. Jobs are queued in
// FIFO order; each dispatched batch shares a Counter the caller can wait on.
type Pool struct {
	queue   queue
	running atomic.Bool

	wakeMutex sync.Mutex
	wake      *sync.Cond

	wg sync.WaitGroup
}

// DefaultWorkerCount returns the number of workers that leaves one logical
// core free for the caller's own loop.
func DefaultWorkerCount() int {
	n := runtime.NumCPU() - 1
	if n < 1 {
		n = 1
	}
	return n
}

// NewPool creates a pool and starts its workers. Worker counts below one are
// raised to one.
func NewPool(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	p := &Pool{}
	p.wake = sync.NewCond(&p.wakeMutex)
	p.running.Store(true)

	p.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}
	logger.Infof("started job pool with %d workers", numWorkers)
	return p
}

// Dispatch queues a single job and returns its fence
func (p *Pool) Dispatch(job Job) *Counter {
	return p.DispatchAll([]Job{job})
}

// DispatchAll queues a batch of jobs sharing one fence. The fence starts at
// the batch size and reaches zero when every job has finished.
func (p *Pool) DispatchAll(batch []Job) *Counter {
	fence := NewCounter(len(batch))
	// The running check and the pushes happen under the wake mutex, the
	// same lock Close flips running under. A batch accepted here is either
	// run by a worker or drained by Close, never stranded.
	p.wakeMutex.Lock()
	defer p.wakeMutex.Unlock()
	if !p.running.Load() {
		logger.Warning("dispatch on a closed pool, dropping batch")
		fence.Add(-len(batch))
		return fence
	}
	for _, job := range batch {
		p.queue.push(pending{job: job, fence: fence})
	}
	// Broadcast under the wake mutex so a worker between its emptiness
	// check and Wait cannot miss the signal
	p.wake.Broadcast()
	return fence
}

// QueuedJobs returns the number of jobs not yet picked up by a worker
func (p *Pool) QueuedJobs() int {
	return p.queue.length()
}

// Close stops the workers and joins them. Queued jobs that no worker picked
// up before shutdown are abandoned with their fences decremented, so waiters
// are always released.
func (p *Pool) Close() {
	p.wakeMutex.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.wakeMutex.Unlock()
		return
	}
	p.wake.Broadcast()
	p.wakeMutex.Unlock()
	p.wg.Wait()
	for {
		item, ok := p.queue.pop()
		if !ok {
			break
		}
		item.fence.Decrement()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	spins := 0
	for {
		if item, ok := p.queue.pop(); ok {
			spins = 0
			p.execute(item)
			continue
		}
		if !p.running.Load() {
			return
		}
		spins++
		if spins < spinThreshold {
			runtime.Gosched()
			continue
		}
		p.wakeMutex.Lock()
		for p.queue.empty() && p.running.Load() {
			p.wake.Wait()
		}
		p.wakeMutex.Unlock()
		spins = 0
	}
}

// execute runs a job and decrements its fence exactly once, even when the
// job panics
func (p *Pool) execute(item pending) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("job panicked: %v", r)
		}
		item.fence.Decrement()
	}()
	item.job.Run()
}
