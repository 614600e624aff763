// Package parallel splits region operations into horizontal bands and runs
// them on a fixed set of goroutines.
//
// Every band covers a disjoint range of rows, so a pixel operation that
// only reads and writes its own pixel needs no synchronization.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// minBandRows is the smallest band worth handing to another goroutine.
const minBandRows = 8

// Band is a half-open row range [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Pool is a pool of goroutines that execute row bands.
//
// A nil *Pool is valid and runs everything on the calling goroutine.
//
// Thread safety: Rows may be called from one goroutine at a time per
// caller; Close is safe to call multiple times.
type Pool struct {
	workers int
	jobs    chan func()
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		jobs:    make(chan func(), workers*2),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		job()
	}
}

// Workers returns the number of workers. A nil pool reports 1.
func (p *Pool) Workers() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *Pool) IsRunning() bool {
	return p != nil && p.running.Load()
}

// Rows calls fn for bands covering [y0, y1) and returns when all of them
// are done. Small ranges, closed pools and nil pools run fn once on the
// calling goroutine.
func (p *Pool) Rows(y0, y1 int, fn func(y0, y1 int)) {
	if y1 <= y0 {
		return
	}
	if !p.IsRunning() || p.workers < 2 || y1-y0 < 2*minBandRows {
		fn(y0, y1)
		return
	}

	bands := Split(y0, y1, p.workers)

	var done sync.WaitGroup
	done.Add(len(bands) - 1)
	for _, b := range bands[1:] {
		b := b
		p.jobs <- func() {
			defer done.Done()
			fn(b.Y0, b.Y1)
		}
	}
	// The caller takes the first band itself.
	fn(bands[0].Y0, bands[0].Y1)
	done.Wait()
}

// Split divides [y0, y1) into at most n contiguous bands of near equal
// height, none shorter than minBandRows unless the range itself is.
func Split(y0, y1, n int) []Band {
	rows := y1 - y0
	if rows <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if maxBands := rows / minBandRows; n > maxBands {
		n = max(maxBands, 1)
	}

	bands := make([]Band, 0, n)
	base, extra := rows/n, rows%n
	y := y0
	for i := 0; i < n; i++ {
		h := base
		if i < extra {
			h++
		}
		bands = append(bands, Band{Y0: y, Y1: y + h})
		y += h
	}
	return bands
}

// Close stops the workers after queued bands finish.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if p == nil || !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.jobs)
	p.wg.Wait()
}
