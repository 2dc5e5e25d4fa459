package countdown

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultTickInterval is the cadence of the local countdown
const DefaultTickInterval = time.Second

// Ticker keeps a locally displayed "seconds remaining" value for one deadline.
// It only reads the clock; re-anchoring to server time is done by the caller via Reanchor.
type Ticker struct {
	clock    clock.Clock
	interval time.Duration
	onTick   func(int64)

	// lifecycle guards start/stop/reanchor so only one loop goroutine exists at a time
	lifecycle sync.Mutex
	stop      chan struct{}
	done      chan struct{}
	closed    bool

	mu       sync.RWMutex
	deadline time.Time
	value    int64
}

// NewTicker creates a stopped ticker. onTick may be nil and must not call Stop.
func NewTicker(clk clock.Clock, deadline time.Time, interval time.Duration, onTick func(int64)) *Ticker {
	if clk == nil {
		clk = clock.New()
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	t := &Ticker{
		clock:    clk,
		interval: interval,
		onTick:   onTick,
		deadline: deadline,
	}
	t.value = Remaining(deadline, clk.Now())
	return t
}

// Start computes the current value and begins ticking. Calling Start on a running or stopped ticker is a no-op.
func (t *Ticker) Start() {
	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()

	if t.closed || t.stop != nil {
		return
	}
	t.emit(t.recompute())
	t.launch()
}

// Reanchor replaces the deadline. The running timer is cancelled and a fresh one started,
// so no partial interval of the old countdown carries over. After Stop only Value changes.
func (t *Ticker) Reanchor(deadline time.Time) {
	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()

	wasRunning := t.halt()

	t.mu.Lock()
	t.deadline = deadline
	t.mu.Unlock()

	v := t.recompute()
	if t.closed {
		return
	}
	t.emit(v)
	if wasRunning {
		t.launch()
	}
}

// Stop cancels the timer and returns once the tick goroutine has exited. It is idempotent.
func (t *Ticker) Stop() {
	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()

	t.halt()
	t.closed = true
}

// Value returns the seconds remaining as last computed
func (t *Ticker) Value() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.value
}

// Deadline returns the current anchor
func (t *Ticker) Deadline() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.deadline
}

// launch must be called with lifecycle held
func (t *Ticker) launch() {
	stop := make(chan struct{})
	done := make(chan struct{})
	t.stop, t.done = stop, done

	tk := t.clock.Ticker(t.interval)
	go t.run(tk, stop, done)
}

// halt must be called with lifecycle held; reports whether a loop was running
func (t *Ticker) halt() bool {
	if t.stop == nil {
		return false
	}
	close(t.stop)
	<-t.done
	t.stop, t.done = nil, nil
	return true
}

func (t *Ticker) run(tk *clock.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer tk.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tk.C:
			select {
			case <-stop:
				return
			default:
			}
			t.emit(t.recompute())
		}
	}
}

func (t *Ticker) recompute() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.value = Remaining(t.deadline, t.clock.Now())
	return t.value
}

func (t *Ticker) emit(v int64) {
	if t.onTick != nil {
		t.onTick(v)
	}
}
