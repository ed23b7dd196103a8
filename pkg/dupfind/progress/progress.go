// Package progress runs a background observer that periodically emits the
// number of files processed by an ongoing scan. The reporter never blocks
// the scan: it only takes atomic snapshots of a shared counter.
package progress

import (
	"errors"
	"sync"
	"time"

	"github.com/rgeddes/dupfind/pkg/dupfind/logging"
)

var logger = logging.Get("progress")

// DefaultInterval is the period between progress emissions.
const DefaultInterval = 5 * time.Second

// ErrNotIdle is returned by Start when the reporter has already run.
var ErrNotIdle = errors.New("progress reporter already started")

// Source provides a non-blocking snapshot of the processed-file count.
// The reporter holds only this read-only view of the scan's counter.
type Source interface {
	Processed() int64
}

// State describes the reporter lifecycle.
type State int

const (
	// StateIdle means Start has not been called.
	StateIdle State = iota
	// StateRunning means the observer goroutine is emitting snapshots.
	StateRunning
	// StateStopped means the final snapshot has been emitted.
	StateStopped
)

// Reporter periodically reads a Source and hands the snapshot to an emit
// callback. Stop signals the observer and waits for it to emit one final
// snapshot before returning, so the last count is never lost.
type Reporter struct {
	source   Source
	interval time.Duration
	emit     func(int64)

	mu       sync.Mutex
	state    State
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// New creates a Reporter. A non-positive interval falls back to
// DefaultInterval. The emit callback runs on the observer goroutine; a
// panic-free emit is the caller's responsibility, but emit errors are its
// own concern and never abort the reporter.
func New(source Source, interval time.Duration, emit func(int64)) *Reporter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reporter{
		source:   source,
		interval: interval,
		emit:     emit,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// State returns the current lifecycle state.
func (r *Reporter) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Start launches the observer goroutine. It may be called once.
func (r *Reporter) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateIdle {
		return ErrNotIdle
	}
	r.state = StateRunning

	go r.run()
	return nil
}

// Stop signals the observer, waits for its final emission, and marks the
// reporter stopped. It is a no-op if the reporter never started and is
// safe to call more than once.
func (r *Reporter) Stop() {
	r.mu.Lock()
	switch r.state {
	case StateIdle:
		r.state = StateStopped
		r.mu.Unlock()
		return
	case StateStopped:
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	r.stopOnce.Do(func() { close(r.stop) })
	<-r.done

	r.mu.Lock()
	r.state = StateStopped
	r.mu.Unlock()
}

// run is the observer loop: emit on every tick, then once more on stop.
func (r *Reporter) run() {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.snapshot()
		case <-r.stop:
			// Final snapshot so the last progress line is never lost.
			r.snapshot()
			return
		}
	}
}

// snapshot reads the counter and emits it. Emission failures are the
// callback's problem; a tick is simply skipped on panic-free error paths.
func (r *Reporter) snapshot() {
	n := r.source.Processed()
	logger.Debug("progress snapshot", "processed", n)
	if r.emit != nil {
		r.emit(n)
	}
}
