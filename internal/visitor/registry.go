package visitor

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/bornholm/shopvibe/internal/navbar"
	"github.com/bornholm/shopvibe/internal/syncx"
	"github.com/pkg/errors"
)

type NavbarFactory func() *navbar.Navbar

// EvictFunc is called with the id of every visitor removed by Sweep.
type EvictFunc func(visitorID string)

type Options struct {
	OnEvict EvictFunc
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		OnEvict: func(string) {},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithOnEvict(fn EvictFunc) OptionFunc {
	return func(opts *Options) {
		opts.OnEvict = fn
	}
}

// Registry keeps the visitors currently browsing the storefront.
type Registry struct {
	newNavbar NavbarFactory
	onEvict   EvictFunc
	visitors  syncx.Map[string, *Visitor]
	count     atomic.Int64
	now       func() time.Time
}

func NewRegistry(factory NavbarFactory, funcs ...OptionFunc) *Registry {
	opts := NewOptions(funcs...)

	return &Registry{
		newNavbar: factory,
		onEvict:   opts.OnEvict,
		now:       time.Now,
	}
}

// Mount mounts a fresh navbar for a new page of the visitor, creating the
// visitor if needed. Other pages of the visitor stay mounted.
func (r *Registry) Mount(ctx context.Context, visitorID string) (*Visitor, *Page) {
	for {
		visitor, loaded := r.visitors.LoadOrStore(visitorID, newVisitor(visitorID))
		if !loaded {
			r.count.Add(1)
		}

		page, ok := visitor.mount(ctx, r.newNavbar(), r.now())
		if ok {
			return visitor, page
		}

		// Evicted between load and mount, drop the stale entry and retry
		if r.visitors.CompareAndDelete(visitorID, visitor) {
			r.count.Add(-1)
		}
	}
}

// Get returns the visitor's mounted page identified by pageID.
func (r *Registry) Get(visitorID, pageID string) (*Page, error) {
	visitor, exists := r.visitors.Load(visitorID)
	if !exists {
		return nil, errors.WithStack(ErrNotMounted)
	}

	if !visitor.touch(r.now()) {
		return nil, errors.WithStack(ErrNotMounted)
	}

	page, err := visitor.Page(pageID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return page, nil
}

// Unmount releases one page of the visitor. Unknown visitors and pages are
// ignored.
func (r *Registry) Unmount(visitorID, pageID string) {
	visitor, exists := r.visitors.Load(visitorID)
	if !exists {
		return
	}

	visitor.unmount(pageID)
}

func (r *Registry) Len() int {
	return int(r.count.Load())
}

// Sweep evicts visitors idle for longer than maxIdle and returns how many
// were removed.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	now := r.now()
	evicted := 0

	r.visitors.Range(func(id string, visitor *Visitor) bool {
		if !visitor.evictIfIdle(now, maxIdle) {
			return true
		}

		if r.visitors.CompareAndDelete(id, visitor) {
			r.count.Add(-1)
		}

		r.onEvict(id)
		evicted++

		return true
	})

	return evicted
}

// Run sweeps idle visitors every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := r.Sweep(maxIdle); evicted > 0 {
				slog.DebugContext(ctx, "evicted idle visitors", slog.Int("evicted", evicted), slog.Int("remaining", r.Len()))
			}
		}
	}
}
