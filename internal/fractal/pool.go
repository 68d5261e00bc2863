package fractal

import (
	"runtime"
	"sync"
	"time"
)

const taskQueueSize = 64

// Pool runs generation tasks on a fixed set of worker goroutines. Tasks
// queue when every worker is busy; nothing is dropped and nothing can be
// canceled. Submit blocks only while the queue is full, never
// indefinitely while workers make progress.
type Pool struct {
	tasks   chan func()
	pending sync.WaitGroup
}

// NewPool starts a pool. Worker counts below 1 fall back to GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{tasks: make(chan func(), taskQueueSize)}
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	Logger().Debug("pool started", "workers", workers)
	return p
}

func (p *Pool) worker() {
	for task := range p.tasks {
		task()
		p.pending.Done()
	}
}

// Submit enqueues an arbitrary task.
func (p *Pool) Submit(task func()) {
	p.pending.Add(1)
	p.tasks <- task
}

// Wait blocks until every task submitted so far has finished.
func (p *Pool) Wait() {
	p.pending.Wait()
}

// Close lets the workers exit once queued tasks drain. Submit after
// Close panics.
func (p *Pool) Close() {
	close(p.tasks)
}

// Generate schedules g asynchronously. onProgress, when non-nil,
// observes clamped strictly increasing values in [0, 1]; onComplete
// fires exactly once, strictly after the last progress report, with the
// finished output. Both callbacks run on a worker goroutine.
func (p *Pool) Generate(g Generator, params Params, onProgress ProgressFunc, onComplete func(Output)) {
	p.Submit(func() {
		start := time.Now()
		out := g.Generate(params, Monotone(onProgress))
		Logger().Debug("generate done", "kind", out.Kind.String(), "elapsed", time.Since(start))
		if onComplete != nil {
			onComplete(out)
		}
	})
}

// GenerateProgressive schedules a staged render. Stages arrive in order
// on a single worker goroutine; the final stage carries done == 1.
func (p *Pool) GenerateProgressive(g ProgressiveGenerator, params Params, onStage StageFunc) {
	p.Submit(func() {
		g.GenerateProgressive(params, onStage)
	})
}

var (
	defaultPool *Pool
	defaultOnce sync.Once
)

// Default returns the shared pool, created on first use with GOMAXPROCS
// workers. It is never closed.
func Default() *Pool {
	defaultOnce.Do(func() { defaultPool = NewPool(0) })
	return defaultPool
}
