package poller

import (
	"context"
	"errors"
	"sync"
	"time"

	"auction-console/internal/models"
	"auction-console/utils"

	"github.com/benbjohnson/clock"
)

// Poll cadences observed in the views
const (
	DetailInterval = 10 * time.Second
	CardInterval   = time.Second
)

// State of the sync state machine
type State int

const (
	// Idle: not started
	Idle State = iota
	// Polling: a request is outstanding and nothing has been applied yet
	Polling
	// Anchored: the latest applied poll succeeded and its deadline anchors the countdown
	Anchored
	// Stale: the most recent poll failed; the previous snapshot is still shown
	Stale
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Polling:
		return "polling"
	case Anchored:
		return "anchored"
	case Stale:
		return "stale"
	default:
		return "unknown"
	}
}

// FetchFunc retrieves authoritative state for one product
type FetchFunc func(ctx context.Context) (models.LiveSnapshot, error)

// Anchorable is re-anchored after every accepted poll; *countdown.Ticker satisfies it
type Anchorable interface {
	Reanchor(deadline time.Time)
}

// Options configure a Poller
type Options struct {
	Name       string
	Interval   time.Duration
	Clock      clock.Clock
	Ticker     Anchorable
	OnSnapshot func(models.LiveSnapshot)
}

// Poller periodically fetches a LiveSnapshot. Each poll carries a sequence number and a
// completion older than the last applied one is discarded, so a slow response never
// overwrites fresher state.
type Poller struct {
	fetch FetchFunc
	opts  Options

	mu        sync.RWMutex
	state     State
	issued    uint64
	applied   uint64
	failedSeq uint64
	snapshot  models.LiveSnapshot
	hasSnap   bool
	lastErr   error
	discarded int

	// deliver serializes callbacks so the ticker sees anchors in sequence order
	deliver sync.Mutex

	lifecycle sync.Mutex
	cancel    context.CancelFunc
	loopDone  chan struct{}
	inflight  sync.WaitGroup
	stopped   bool
}

// New creates an idle poller
func New(fetch FetchFunc, opts Options) *Poller {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Interval <= 0 {
		opts.Interval = DetailInterval
	}
	return &Poller{fetch: fetch, opts: opts}
}

// Start issues the first poll immediately and then one per interval until Stop or ctx is done.
func (p *Poller) Start(ctx context.Context) {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	if p.stopped || p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.loopDone = make(chan struct{})

	p.mu.Lock()
	if p.state == Idle {
		p.state = Polling
	}
	p.mu.Unlock()

	tk := p.opts.Clock.Ticker(p.opts.Interval)
	p.dispatch(ctx)
	go p.run(ctx, tk)
}

// Stop cancels in-flight requests and waits until the loop and every outstanding poll have
// returned. No callback fires after Stop returns. Callbacks must not call Stop.
func (p *Poller) Stop() {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	p.stopped = true
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.loopDone
	p.inflight.Wait()
	p.cancel = nil
}

// State returns the current state
func (p *Poller) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Snapshot returns the last applied snapshot, if any
func (p *Poller) Snapshot() (models.LiveSnapshot, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot, p.hasSnap
}

// LastError returns the error of the latest failed poll, cleared by the next success
func (p *Poller) LastError() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastErr
}

// Discarded returns how many out-of-order completions were dropped
func (p *Poller) Discarded() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.discarded
}

func (p *Poller) run(ctx context.Context, tk *clock.Ticker) {
	defer close(p.loopDone)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tk.C:
			if ctx.Err() != nil {
				return
			}
			p.dispatch(ctx)
		}
	}
}

func (p *Poller) dispatch(ctx context.Context) {
	p.mu.Lock()
	p.issued++
	seq := p.issued
	p.mu.Unlock()

	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()
		snap, err := p.fetch(ctx)
		p.complete(ctx, seq, snap, err)
	}()
}

func (p *Poller) complete(ctx context.Context, seq uint64, snap models.LiveSnapshot, err error) {
	if ctx.Err() != nil {
		return
	}

	fields := map[string]any{"poller": p.opts.Name, "seq": seq}

	p.mu.Lock()
	if seq <= p.applied {
		p.discarded++
		fields["applied"] = p.applied
		p.mu.Unlock()
		utils.Debug("poller: discarding out-of-order completion", fields)
		return
	}
	if err != nil {
		if seq > p.failedSeq {
			p.failedSeq = seq
			p.lastErr = err
			p.state = Stale
		}
		p.mu.Unlock()
		if !errors.Is(err, context.Canceled) {
			fields["error"] = err.Error()
			utils.Warn("poller: sync failed, keeping previous state", fields)
		}
		return
	}
	p.applied = seq
	p.snapshot = snap
	p.hasSnap = true
	if seq > p.failedSeq {
		p.lastErr = nil
		p.state = Anchored
	}
	p.mu.Unlock()

	p.deliver.Lock()
	defer p.deliver.Unlock()

	p.mu.RLock()
	current := p.applied
	p.mu.RUnlock()
	if current != seq {
		return
	}

	if p.opts.Ticker != nil {
		p.opts.Ticker.Reanchor(snap.Deadline)
	}
	if p.opts.OnSnapshot != nil {
		p.opts.OnSnapshot(snap)
	}
}
