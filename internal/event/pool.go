package event

import (
	"runtime"
	"sync"
)

// DefaultWorkers returns the worker count used when a pool is created
// without one.
func DefaultWorkers() int {
	n := runtime.NumCPU() + 4
	if n > 32 {
		n = 32
	}
	return n
}

// Pool is a fixed-size worker pool that threading dispatchers submit to.
// One pool can back several dispatchers to put a lid on the total
// concurrency of background work.
type Pool struct {
	name  string
	tasks chan func()
	stop  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
}

// NewPool starts a pool named name with the given number of workers, or
// DefaultWorkers for counts below one.
func NewPool(name string, workers int) *Pool {
	if workers < 1 {
		workers = DefaultWorkers()
	}
	p := &Pool{
		name:  name,
		tasks: make(chan func(), workers*4),
		stop:  make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// Name returns the pool's name.
func (p *Pool) Name() string { return p.name }

// Submit queues task for execution, blocking while the queue is full.
// After Close the task runs on a fresh goroutine instead.
func (p *Pool) Submit(task func()) {
	select {
	case <-p.stop:
		go task()
	case p.tasks <- task:
	}
}

// Close stops the workers after the queued tasks finish and waits for
// them. Close is idempotent.
func (p *Pool) Close() {
	p.once.Do(func() { close(p.stop) })
	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.stop:
			// Drain what was queued before the stop so dispatches
			// waiting on results still complete.
			for {
				select {
				case task := <-p.tasks:
					task()
				default:
					return
				}
			}
		case task := <-p.tasks:
			task()
		}
	}
}
