package navbar

import (
	"context"
	"sync"
	"time"

	"github.com/bornholm/shopvibe/internal/animation"
	"github.com/bornholm/shopvibe/internal/nav"
	"github.com/bornholm/shopvibe/internal/ui"
	"github.com/bornholm/shopvibe/internal/viewport"
	"github.com/rs/xid"
)

// ScrollThreshold is the vertical offset, in pixels, above which the
// header switches to its scrolled presentation.
const ScrollThreshold = 20

const (
	dropdownStagger   = 50 * time.Millisecond
	mobileItemStagger = 100 * time.Millisecond
)

// ScrollSource is the viewport scroll signal a navbar listens to while mounted.
type ScrollSource interface {
	Subscribe(fn viewport.Listener) (release func())
}

// State is the transient UI state of one navbar instance.
type State struct {
	IsScrolled       bool
	IsMobileMenuOpen bool
	// ActiveDropdown is the label of the hovered top-level item, empty when none
	ActiveDropdown string
	IsSearchOpen   bool
}

func (s State) HasActiveDropdown() bool {
	return s.ActiveDropdown != ""
}

// Navbar is one mounted instance of the site header. Every transition is
// synchronous and guarded by the instance mutex. Animations are played
// after the state is updated and never awaited.
type Navbar struct {
	id        xid.ID
	catalogue *nav.Catalogue
	animator  animation.Animator
	brand     string
	cartCount int

	mu      sync.Mutex
	state   State
	mounted bool
	release func()
}

func New(catalogue *nav.Catalogue, funcs ...OptionFunc) *Navbar {
	opts := NewOptions(funcs...)

	return &Navbar{
		id:        xid.New(),
		catalogue: catalogue,
		animator:  animation.Safe(opts.Animator),
		brand:     opts.Brand,
		cartCount: opts.CartCount,
	}
}

func (n *Navbar) ID() string {
	return n.id.String()
}

// Mount subscribes to the scroll source and plays the entrance animations.
// Mounting an already mounted navbar does nothing.
func (n *Navbar) Mount(ctx context.Context, source ScrollSource) {
	n.mu.Lock()
	if n.mounted {
		n.mu.Unlock()
		return
	}

	n.mounted = true
	n.state = State{}
	n.release = source.Subscribe(n.onScroll)
	n.mu.Unlock()

	n.play(ctx, animation.KindNavEntrance, ui.NavbarElementID, 0)
	n.play(ctx, animation.KindLogoEntrance, ui.NavbarLogoElementID, 0)
	n.play(ctx, animation.KindBadgeEntrance, ui.NavbarCartCountElementID, 0)
}

// Unmount releases the scroll subscription. It is safe to call repeatedly.
func (n *Navbar) Unmount() {
	n.mu.Lock()
	release := n.release
	n.release = nil
	n.mounted = false
	n.mu.Unlock()

	if release != nil {
		release()
	}
}

func (n *Navbar) Mounted() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.mounted
}

func (n *Navbar) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.state
}

func (n *Navbar) onScroll(offset int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	// A publish may race with Unmount
	if !n.mounted {
		return
	}

	n.state.IsScrolled = offset > ScrollThreshold
}

// EnterItem opens the dropdown of the top-level item labelled label.
// Leaf items and unknown labels are ignored.
func (n *Navbar) EnterItem(ctx context.Context, label string) {
	item, exists := n.catalogue.Lookup(label)
	if !exists {
		return
	}

	parent, ok := item.(nav.Parent)
	if !ok {
		return
	}

	n.mu.Lock()
	if !n.mounted {
		n.mu.Unlock()
		return
	}

	previous := n.state.ActiveDropdown
	n.state.ActiveDropdown = label
	n.mu.Unlock()

	if previous == label {
		return
	}

	if previous != "" {
		n.play(ctx, animation.KindDropdownExit, ui.DropdownElementID(previous), 0)
	}

	n.play(ctx, animation.KindDropdownEnter, ui.DropdownElementID(label), 0)

	for idx := range parent.Children() {
		n.play(ctx, animation.KindDropdownItemEnter, ui.DropdownItemElementID(label, idx), time.Duration(idx)*dropdownStagger)
	}
}

// LeaveItem always clears the active dropdown, whichever item was active.
func (n *Navbar) LeaveItem(ctx context.Context) {
	n.mu.Lock()
	if !n.mounted {
		n.mu.Unlock()
		return
	}

	previous := n.state.ActiveDropdown
	n.state.ActiveDropdown = ""
	n.mu.Unlock()

	if previous != "" {
		n.play(ctx, animation.KindDropdownExit, ui.DropdownElementID(previous), 0)
	}
}

func (n *Navbar) OpenSearch(ctx context.Context) {
	if n.setSearch(true) {
		n.play(ctx, animation.KindSearchOpen, ui.NavbarSearchElementID, 0)
	}
}

func (n *Navbar) CloseSearch(ctx context.Context) {
	if n.setSearch(false) {
		n.play(ctx, animation.KindSearchClose, ui.NavbarSearchElementID, 0)
	}
}

func (n *Navbar) setSearch(open bool) (changed bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.mounted || n.state.IsSearchOpen == open {
		return false
	}

	n.state.IsSearchOpen = open

	return true
}

// ToggleMobileMenu flips the mobile panel. Opening it plays a staggered
// slide-in on every mobile menu item: the search field then each top-level
// item.
func (n *Navbar) ToggleMobileMenu(ctx context.Context) {
	n.mu.Lock()
	if !n.mounted {
		n.mu.Unlock()
		return
	}

	n.state.IsMobileMenuOpen = !n.state.IsMobileMenuOpen
	opened := n.state.IsMobileMenuOpen
	n.mu.Unlock()

	if !opened {
		n.play(ctx, animation.KindMobilePanelExit, ui.NavbarMobilePanelID, 0)
		return
	}

	n.play(ctx, animation.KindMobilePanelEnter, ui.NavbarMobilePanelID, 0)
	n.play(ctx, animation.KindMobileItemEnter, ui.NavbarMobileSearchID, 0)

	for idx := range n.catalogue.Items() {
		position := idx + 1
		n.play(ctx, animation.KindMobileItemEnter, ui.MobileItemElementID(position), time.Duration(position)*mobileItemStagger)
	}
}

// FollowMobileLink closes the mobile panel after a link inside it was
// clicked.
func (n *Navbar) FollowMobileLink(ctx context.Context) {
	n.mu.Lock()
	if !n.mounted || !n.state.IsMobileMenuOpen {
		n.mu.Unlock()
		return
	}

	n.state.IsMobileMenuOpen = false
	n.mu.Unlock()

	n.play(ctx, animation.KindMobilePanelExit, ui.NavbarMobilePanelID, 0)
}

func (n *Navbar) play(ctx context.Context, kind animation.Kind, target string, delay time.Duration) {
	n.animator.Play(ctx, animation.Command{
		Kind:   kind,
		Target: target,
		Delay:  delay,
	})
}
