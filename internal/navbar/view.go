package navbar

import (
	"strings"
	"time"

	"github.com/bornholm/shopvibe/internal/nav"
	"github.com/bornholm/shopvibe/internal/ui"
)

const (
	headerClassBase     = "sticky top-0 left-0 right-0 z-50 transition-all duration-300"
	headerClassScrolled = "backdrop-blur-md bg-white/80 dark:bg-black/80 shadow-lg border-b border-white/20"
	headerClassTop      = "backdrop-blur-sm bg-white/60 dark:bg-black/60"
)

func HeaderClass(scrolled bool) string {
	variant := headerClassTop
	if scrolled {
		variant = headerClassScrolled
	}

	return strings.Join([]string{headerClassBase, variant}, " ")
}

// View returns the render model of the navbar's current state.
func (n *Navbar) View() ui.NavbarTemplateData {
	state := n.State()

	topLevel := n.catalogue.Items()
	items := make([]ui.NavbarItem, 0, len(topLevel))

	for idx, item := range topLevel {
		items = append(items, newNavbarItem(idx, item, state))
	}

	return ui.NavbarTemplateData{
		InstanceID:     n.ID(),
		Brand:          n.brand,
		HeaderClass:    HeaderClass(state.IsScrolled),
		Scrolled:       state.IsScrolled,
		Items:          items,
		SearchOpen:     state.IsSearchOpen,
		MobileMenuOpen: state.IsMobileMenuOpen,
		CartCount:      n.cartCount,
	}
}

func newNavbarItem(idx int, item nav.Item, state State) ui.NavbarItem {
	switch typ := item.(type) {
	case nav.Parent:
		children := typ.Children()
		rendered := make([]ui.NavbarItem, 0, len(children))

		for childIdx, child := range children {
			rendered = append(rendered, ui.NavbarItem{
				Index: childIdx,
				Label: child.Label(),
				URL:   child.Href(),
				Delay: (time.Duration(childIdx) * dropdownStagger).Seconds(),
			})
		}

		return ui.NavbarItem{
			Index:        idx,
			Label:        typ.Label(),
			URL:          typ.Href(),
			Children:     rendered,
			DropdownOpen: state.ActiveDropdown == typ.Label(),
		}

	default:
		return ui.NavbarItem{
			Index: idx,
			Label: item.Label(),
			URL:   item.Href(),
		}
	}
}
