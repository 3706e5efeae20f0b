package jobs

import (
	"sync/atomic"
	"testing"
	"time"
)

// countingJob bumps a shared counter when run
type countingJob struct {
	counter *int64
}

func (j *countingJob) Run() {
	atomic.AddInt64(j.counter, 1)
}

// panickyJob always panics
type panickyJob struct{}

func (j *panickyJob) Run() {
	panic("boom")
}

// orderedJob appends its index to a result channel
type orderedJob struct {
	index   int
	results chan int
}

func (j *orderedJob) Run() {
	j.results <- j.index
}

func TestPool_DispatchAll_WaitSeesAllWork(t *testing.T) {
	for _, batchSize := range []int{0, 1, 1000} {
		pool := NewPool(4)

		var counter int64
		batch := make([]Job, batchSize)
		for i := range batch {
			batch[i] = &countingJob{counter: &counter}
		}

		pool.DispatchAll(batch).Wait(0)

		if got := atomic.LoadInt64(&counter); got != int64(batchSize) {
			t.Errorf("batch=%d: expected %d jobs run before Wait returned, got %d", batchSize, batchSize, got)
		}
		pool.Close()
	}
}

func TestPool_Dispatch_MultipleBatches(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	var counter int64
	for i := 0; i < 10; i++ {
		pool.Dispatch(&countingJob{counter: &counter}).Wait(0)
	}

	if got := atomic.LoadInt64(&counter); got != 10 {
		t.Errorf("Expected 10 jobs run, got %d", got)
	}
}

func TestPool_PanickingJobReleasesFence(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	var counter int64
	batch := []Job{
		&panickyJob{},
		&countingJob{counter: &counter},
		&panickyJob{},
	}

	done := make(chan struct{})
	go func() {
		pool.DispatchAll(batch).Wait(0)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return after panicking jobs")
	}
	if got := atomic.LoadInt64(&counter); got != 1 {
		t.Errorf("Expected the healthy job to run, got %d", got)
	}
}

func TestPool_SingleWorkerRunsFIFO(t *testing.T) {
	pool := NewPool(1)
	defer pool.Close()

	const jobs = 50
	results := make(chan int, jobs)
	batch := make([]Job, jobs)
	for i := range batch {
		batch[i] = &orderedJob{index: i, results: results}
	}

	pool.DispatchAll(batch).Wait(0)
	close(results)

	expected := 0
	for got := range results {
		if got != expected {
			t.Fatalf("Expected job %d next, got %d", expected, got)
		}
		expected++
	}
	if expected != jobs {
		t.Errorf("Expected %d jobs run, got %d", jobs, expected)
	}
}

func TestPool_CloseIsIdempotent(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()
}

func TestPool_DispatchAfterCloseReleasesFence(t *testing.T) {
	pool := NewPool(2)
	pool.Close()

	var counter int64
	fence := pool.DispatchAll([]Job{&countingJob{counter: &counter}})

	done := make(chan struct{})
	go func() {
		fence.Wait(0)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait on a closed pool's fence did not return")
	}
	if atomic.LoadInt64(&counter) != 0 {
		t.Error("Job ran on a closed pool")
	}
}

func TestPool_DispatchRacingCloseNeverStrandsFence(t *testing.T) {
	// Dispatches racing Close must either run their jobs or have their
	// fences drained; a Wait that hangs means a batch slipped past both
	for i := 0; i < 200; i++ {
		pool := NewPool(2)

		var counter int64
		fences := make(chan *Counter, 4)
		go func() {
			for j := 0; j < 4; j++ {
				fences <- pool.DispatchAll([]Job{
					&countingJob{counter: &counter},
					&countingJob{counter: &counter},
				})
			}
			close(fences)
		}()
		pool.Close()

		done := make(chan struct{})
		go func() {
			for fence := range fences {
				fence.Wait(0)
			}
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("iteration %d: a fence was never released", i)
		}
	}
}

func TestCounter_WaitAtWatermark(t *testing.T) {
	counter := NewCounter(3)

	done := make(chan struct{})
	go func() {
		counter.Wait(1)
		close(done)
	}()

	counter.Decrement()
	select {
	case <-done:
		t.Fatal("Wait(1) returned with the count still at 2")
	case <-time.After(50 * time.Millisecond):
	}

	counter.Decrement()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait(1) did not return at count 1")
	}

	if counter.Value() != 1 {
		t.Errorf("Expected count 1, got %d", counter.Value())
	}
}

func TestCounter_WaitOnZeroReturnsImmediately(t *testing.T) {
	counter := NewCounter(0)
	done := make(chan struct{})
	go func() {
		counter.Wait(0)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait(0) on an empty counter did not return")
	}
}
