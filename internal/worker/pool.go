// Package worker provides a worker pool for parallel subtree counting.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesskit/internal/chess"
)

// Item is one root subtree to count: the position after a root move.
type Item struct {
	Board *chess.Board
	Move  chess.Move
	Depth int
	Index int // Original index for tracking
}

// Result is the count for one root subtree.
type Result struct {
	Move  chess.Move
	Nodes uint64
	Index int
	Err   error
}

// CountFunc is the function signature for counting a work item.
type CountFunc func(item Item) Result

// Pool manages a pool of workers counting subtrees in parallel.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan Item
	resultChan chan Result
	countFunc  CountFunc
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool. countFunc is required; the defaults
// are 1 worker and a buffer of 32 items.
func NewPool(countFunc CountFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 32,
		countFunc:  countFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan Item, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker counts items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without counting
		}
		p.resultChan <- p.countFunc(item)
	}
}

// Submit submits a work item for counting.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item Item) {
	p.workChan <- item
}

// Stop signals workers to stop counting new items.
// Items already in the channel will be drained but not counted.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers
// are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading counted results.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
