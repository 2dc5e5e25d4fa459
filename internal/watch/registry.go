// Package watch keeps the live countdown views of the products a client is looking at. Each
// mounted view pairs a local countdown with a sync poller that re-anchors it to server time.
package watch

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-console/internal/auctionerrors"
	"auction-console/internal/countdown"
	"auction-console/internal/models"
	"auction-console/internal/poller"
	"auction-console/utils"

	"github.com/benbjohnson/clock"
)

// Fetcher retrieves the authoritative state of one product
type Fetcher interface {
	LiveSnapshot(ctx context.Context, productID string) (models.LiveSnapshot, error)
}

// Options configure a Registry
type Options struct {
	Clock        clock.Clock
	PollInterval time.Duration
	TickInterval time.Duration
	// Terminal is shown once a view reaches zero; defaults to countdown.Expired
	Terminal string
	// OnTick, when set, receives every countdown value. It must not call Unmount or Close.
	OnTick func(productID string, seconds int64)
}

// View is a point-in-time copy of a mounted live view
type View struct {
	ProductID  string    `json:"product_id"`
	Seconds    int64     `json:"seconds_remaining"`
	Remaining  string    `json:"remaining"`
	Clock      string    `json:"clock"`
	Deadline   time.Time `json:"deadline"`
	HighestBid float64   `json:"highest_bid"`
	BidCount   int       `json:"bid_count"`
	SyncState  string    `json:"sync_state"`
	LastError  string    `json:"last_error,omitempty"`
	Discarded  int       `json:"discarded_polls"`
}

type liveView struct {
	productID string
	ticker    *countdown.Ticker
	poller    *poller.Poller
	hinted    bool
}

func (v *liveView) stop() {
	// poller first so nothing re-anchors a stopped ticker
	v.poller.Stop()
	v.ticker.Stop()
}

// Registry owns the mounted views, keyed by product ID
type Registry struct {
	ctx     context.Context
	fetcher Fetcher
	opts    Options

	mu     sync.Mutex
	views  map[string]*liveView
	closed bool
}

// NewRegistry creates an empty registry. Polls run under ctx.
func NewRegistry(ctx context.Context, fetcher Fetcher, opts Options) *Registry {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = poller.DetailInterval
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = countdown.DefaultTickInterval
	}
	if opts.Terminal == "" {
		opts.Terminal = countdown.Expired
	}
	return &Registry{
		ctx:     ctx,
		fetcher: fetcher,
		opts:    opts,
		views:   make(map[string]*liveView),
	}
}

// Mount starts a live view for productID. hint is the deadline already known from a listing
// and may be zero. Mounting a product twice returns the running view.
func (r *Registry) Mount(productID string, hint time.Time) (View, error) {
	if productID == "" {
		return View{}, fmt.Errorf("watch: %w - empty product ID", auctionerrors.ErrMissingField)
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return View{}, fmt.Errorf("watch: registry closed: %w", auctionerrors.ErrViewNotMounted)
	}
	if v, ok := r.views[productID]; ok {
		r.mu.Unlock()
		return r.view(v), nil
	}

	var onTick func(int64)
	if r.opts.OnTick != nil {
		onTick = func(s int64) { r.opts.OnTick(productID, s) }
	}
	deadline := hint
	if deadline.IsZero() {
		deadline = r.opts.Clock.Now()
	}
	tk := countdown.NewTicker(r.opts.Clock, deadline, r.opts.TickInterval, onTick)
	p := poller.New(func(ctx context.Context) (models.LiveSnapshot, error) {
		return r.fetcher.LiveSnapshot(ctx, productID)
	}, poller.Options{
		Name:     productID,
		Interval: r.opts.PollInterval,
		Clock:    r.opts.Clock,
		Ticker:   tk,
	})
	v := &liveView{productID: productID, ticker: tk, poller: p, hinted: !hint.IsZero()}
	r.views[productID] = v
	r.mu.Unlock()

	// started outside the lock: the first tick is delivered synchronously
	tk.Start()
	p.Start(r.ctx)

	utils.Info("live view mounted", map[string]any{"product_id": productID})
	return r.view(v), nil
}

// Get returns the current state of a mounted view
func (r *Registry) Get(productID string) (View, error) {
	r.mu.Lock()
	v, ok := r.views[productID]
	r.mu.Unlock()
	if !ok {
		return View{}, fmt.Errorf("watch: product %s: %w", productID, auctionerrors.ErrViewNotMounted)
	}
	return r.view(v), nil
}

// Unmount stops a view's countdown and polling. No callback for it fires after Unmount returns.
func (r *Registry) Unmount(productID string) error {
	r.mu.Lock()
	v, ok := r.views[productID]
	delete(r.views, productID)
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("watch: product %s: %w", productID, auctionerrors.ErrViewNotMounted)
	}
	v.stop()
	utils.Info("live view unmounted", map[string]any{"product_id": productID})
	return nil
}

// Mounted lists the mounted product IDs in order
func (r *Registry) Mounted() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.views))
	for id := range r.views {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Close unmounts every view; later Mount calls fail
func (r *Registry) Close() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[string]*liveView)
	r.closed = true
	r.mu.Unlock()

	for _, v := range views {
		v.stop()
	}
}

func (r *Registry) view(v *liveView) View {
	seconds := v.ticker.Value()
	out := View{
		ProductID: v.productID,
		Seconds:   seconds,
		SyncState: v.poller.State().String(),
		Discarded: v.poller.Discarded(),
	}
	snap, ok := v.poller.Snapshot()
	if ok {
		out.HighestBid = snap.HighestBid
		out.BidCount = len(snap.Bids)
	}
	if err := v.poller.LastError(); err != nil {
		out.LastError = err.Error()
	}
	// nothing to count down from until a listing hint or the first poll arrives
	if ok || v.hinted {
		out.Deadline = v.ticker.Deadline()
		out.Remaining = countdown.FormatRemainingWith(seconds, r.opts.Terminal)
		out.Clock = countdown.FormatClock(seconds)
	}
	return out
}
