package visitor

import (
	"context"
	"sync"
	"time"

	"github.com/bornholm/shopvibe/internal/navbar"
	"github.com/bornholm/shopvibe/internal/viewport"
	"github.com/pkg/errors"
)

var ErrNotMounted = errors.New("no navbar mounted")

// MaxPages is the number of pages a visitor may keep mounted at once.
// Mounting beyond it unmounts the least recently mounted page.
const MaxPages = 8

// Page is one rendered document of a visitor: its navbar instance and the
// scroll signal of the window displaying it.
type Page struct {
	navbar   *navbar.Navbar
	viewport *viewport.Signal
}

// ID returns the page identifier, which is its navbar instance id.
func (p *Page) ID() string {
	return p.navbar.ID()
}

func (p *Page) Navbar() *navbar.Navbar {
	return p.navbar
}

func (p *Page) Viewport() *viewport.Signal {
	return p.viewport
}

// Visitor binds a browser session to the pages it currently displays.
type Visitor struct {
	id string

	mu       sync.Mutex
	pages    map[string]*Page
	order    []string
	lastSeen time.Time
	evicted  bool
}

func newVisitor(id string) *Visitor {
	return &Visitor{
		id:    id,
		pages: make(map[string]*Page),
	}
}

func (v *Visitor) ID() string {
	return v.id
}

// Pages returns the number of mounted pages.
func (v *Visitor) Pages() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.pages)
}

// Page returns the mounted page identified by pageID or ErrNotMounted.
func (v *Visitor) Page(pageID string) (*Page, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	page, exists := v.pages[pageID]
	if !exists || !page.navbar.Mounted() {
		return nil, errors.WithStack(ErrNotMounted)
	}

	return page, nil
}

// mount adds a freshly mounted page. It returns false when the visitor was
// evicted concurrently.
func (v *Visitor) mount(ctx context.Context, next *navbar.Navbar, now time.Time) (*Page, bool) {
	page := &Page{
		navbar:   next,
		viewport: viewport.NewSignal(),
	}

	v.mu.Lock()
	if v.evicted {
		v.mu.Unlock()
		return nil, false
	}

	v.lastSeen = now
	v.pages[page.ID()] = page
	v.order = append(v.order, page.ID())

	var overflow []*Page
	for len(v.order) > MaxPages {
		oldest := v.order[0]
		v.order = v.order[1:]
		overflow = append(overflow, v.pages[oldest])
		delete(v.pages, oldest)
	}
	v.mu.Unlock()

	for _, p := range overflow {
		p.navbar.Unmount()
	}

	next.Mount(ctx, page.viewport)

	return page, true
}

func (v *Visitor) unmount(pageID string) {
	v.mu.Lock()
	page, exists := v.pages[pageID]
	if exists {
		delete(v.pages, pageID)
		v.order = removeID(v.order, pageID)
	}
	v.mu.Unlock()

	if exists {
		page.navbar.Unmount()
	}
}

// evictIfIdle marks the visitor evicted and unmounts all its pages when it
// has been idle for longer than maxIdle. The check and the mark happen
// under the same lock as mount, so a concurrent mount either lands before
// the check or observes the eviction.
func (v *Visitor) evictIfIdle(now time.Time, maxIdle time.Duration) bool {
	v.mu.Lock()
	if v.evicted || now.Sub(v.lastSeen) <= maxIdle {
		v.mu.Unlock()
		return false
	}

	v.evicted = true
	pages := v.pages
	v.pages = map[string]*Page{}
	v.order = nil
	v.mu.Unlock()

	for _, p := range pages {
		p.navbar.Unmount()
	}

	return true
}

// touch records activity. It returns false when the visitor was evicted.
func (v *Visitor) touch(now time.Time) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.evicted {
		return false
	}

	v.lastSeen = now

	return true
}

func removeID(ids []string, id string) []string {
	for idx, candidate := range ids {
		if candidate == id {
			return append(ids[:idx], ids[idx+1:]...)
		}
	}

	return ids
}
