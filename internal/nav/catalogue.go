package nav

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrEmptyLabel     = errors.New("empty label")
	ErrDuplicateLabel = errors.New("duplicate label")
	ErrInvalidHref    = errors.New("invalid href")
)

// Catalogue is the fixed, ordered list of top-level navigation items.
// It is immutable once built.
type Catalogue struct {
	items []Item
}

// Items returns a copy of the top-level items.
func (c *Catalogue) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Lookup returns the top-level item with the given label.
func (c *Catalogue) Lookup(label string) (Item, bool) {
	for _, item := range c.items {
		if item.Label() == label {
			return item, true
		}
	}

	return nil, false
}

// Find searches the whole tree for an item pointing at href.
func (c *Catalogue) Find(href string) (Item, bool) {
	return find(c.items, href)
}

func find(items []Item, href string) (Item, bool) {
	for _, item := range items {
		if item.Href() == href {
			return item, true
		}

		if parent, ok := item.(Parent); ok {
			if found, ok := find(parent.children, href); ok {
				return found, true
			}
		}
	}

	return nil, false
}

// NewCatalogue validates the given items and returns a catalogue.
func NewCatalogue(items ...Item) (*Catalogue, error) {
	if err := validate(items, ""); err != nil {
		return nil, errors.WithStack(err)
	}

	return &Catalogue{items: items}, nil
}

func validate(items []Item, parent string) error {
	seen := make(map[string]struct{}, len(items))

	for idx, item := range items {
		label := item.Label()

		if strings.TrimSpace(label) == "" {
			return errors.Wrapf(ErrEmptyLabel, "item #%d under '%s'", idx, parent)
		}

		if _, exists := seen[label]; exists {
			return errors.Wrapf(ErrDuplicateLabel, "item '%s' under '%s'", label, parent)
		}

		seen[label] = struct{}{}

		if !strings.HasPrefix(item.Href(), "/") {
			return errors.Wrapf(ErrInvalidHref, "item '%s' has href '%s'", label, item.Href())
		}

		if p, ok := item.(Parent); ok {
			if err := validate(p.children, label); err != nil {
				return err
			}
		}
	}

	return nil
}

// DefaultItems returns the storefront's default navigation.
func DefaultItems() []Item {
	return []Item{
		NewParent("Shop", "/shop",
			NewLeaf("New Arrivals", "/shop/new-arrivals"),
			NewLeaf("Best Sellers", "/shop/best-sellers"),
			NewLeaf("Sale", "/shop/sale"),
			NewLeaf("Collections", "/shop/collections"),
		),
		NewParent("Categories", "/categories",
			NewLeaf("Electronics", "/categories/electronics"),
			NewLeaf("Fashion", "/categories/fashion"),
			NewLeaf("Home & Garden", "/categories/home-garden"),
			NewLeaf("Sports", "/categories/sports"),
			NewLeaf("Books", "/categories/books"),
		),
		NewParent("Brands", "/brands",
			NewLeaf("Premium Brands", "/brands/premium"),
			NewLeaf("Popular Brands", "/brands/popular"),
			NewLeaf("New Brands", "/brands/new"),
		),
		NewLeaf("About", "/about"),
		NewLeaf("Contact", "/contact"),
	}
}

// Default returns the default catalogue.
func Default() *Catalogue {
	catalogue, err := NewCatalogue(DefaultItems()...)
	if err != nil {
		panic(errors.WithStack(err))
	}

	return catalogue
}
