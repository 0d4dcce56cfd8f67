// Package watcher implements file system watching for ahead-of-time recompiles.
package watcher

import (
	"slices"
	"sync"
	"time"
	"unique"
)

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 50 * time.Millisecond

// Debouncer coalesces rapid file system events into batches.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	gen      uint64
	armed    sync.WaitGroup
	window   time.Duration
	callback func(paths []string)
}

// NewDebouncer creates a debouncer calling callback with the sorted set of
// paths added during each quiet window.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add records path and restarts the quiet window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(path)] = struct{}{}

	d.stopTimer()
	d.gen++
	gen := d.gen
	d.armed.Add(1)
	d.timer = time.AfterFunc(d.window, func() { d.fire(gen) })
}

// fire runs on the timer goroutine. A timer superseded by a later Add or by
// Flush delivers nothing.
func (d *Debouncer) fire(gen uint64) {
	defer d.armed.Done()

	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	paths := d.drain()
	d.mu.Unlock()

	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}

// Flush runs the callback synchronously with every pending path, then waits
// for any batch whose window already expired to finish.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	d.stopTimer()
	d.gen++
	paths := d.drain()
	d.mu.Unlock()

	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
	d.armed.Wait()
}

// stopTimer cancels the armed timer. A timer that already fired is left to
// finish and accounts for itself. Callers hold mu.
func (d *Debouncer) stopTimer() {
	if d.timer == nil {
		return
	}
	if d.timer.Stop() {
		d.armed.Done()
	}
	d.timer = nil
}

// drain empties the pending set. Callers hold mu.
func (d *Debouncer) drain() []string {
	if len(d.pending) == 0 {
		return nil
	}
	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}
	d.pending = make(map[unique.Handle[string]]struct{})
	slices.Sort(paths)
	return paths
}
