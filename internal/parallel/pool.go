// Package parallel provides a scanline worker pool for data-parallel frame
// rendering. Rows of a frame are independent, so a pool splits the row range
// into contiguous bands and renders them concurrently with no synchronization
// beyond the final join.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// band is one unit of work: render rows [y0, y1) and signal wg.
type band struct {
	y0, y1 int
	fn     func(y0, y1 int)
	wg     *sync.WaitGroup
}

// Pool is a fixed set of goroutines that render row bands.
//
// A Pool is safe for concurrent use, but Run calls are expected to come from
// a single render loop: one frame's bands are always joined before the next
// frame starts.
type Pool struct {
	workers int
	bands   chan band

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to exit.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// New creates a pool with the given number of workers and starts them.
// If workers is 0 or negative, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		bands:   make(chan band, workers),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			// Drain queued bands so an in-flight Run cannot hang on its join.
			p.drain()
			return

		case b := <-p.bands:
			b.fn(b.y0, b.y1)
			b.wg.Done()
		}
	}
}

// drain executes all bands still queued at shutdown.
func (p *Pool) drain() {
	for {
		select {
		case b := <-p.bands:
			b.fn(b.y0, b.y1)
			b.wg.Done()
		default:
			return
		}
	}
}

// Run splits [0, rows) into at most Workers contiguous bands, renders them on
// the pool, and blocks until every row has been processed. Bands are disjoint
// and cover the range exactly once, so fn may write to disjoint buffer rows
// without locking. If the pool has been closed, fn runs inline on the
// caller's goroutine instead.
func (p *Pool) Run(rows int, fn func(y0, y1 int)) {
	if rows <= 0 {
		return
	}
	if !p.running.Load() {
		fn(0, rows)
		return
	}

	nbands := p.workers
	if nbands > rows {
		nbands = rows
	}

	var wg sync.WaitGroup
	wg.Add(nbands)

	// Spread the remainder across the first rows%nbands bands so band sizes
	// differ by at most one row.
	size := rows / nbands
	rem := rows % nbands
	y := 0
	for i := range nbands {
		n := size
		if i < rem {
			n++
		}

		select {
		case p.bands <- band{y0: y, y1: y + n, fn: fn, wg: &wg}:
		case <-p.done:
			// Pool is closing; render this band inline.
			fn(y, y+n)
			wg.Done()
		}
		y += n
	}

	wg.Wait()
}

// Close stops accepting work, waits for queued bands to finish, and stops all
// workers. Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}

	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
