package nav

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestNewCatalogue(t *testing.T) {
	type testCase struct {
		Items       []Item
		ExpectedErr error
	}

	testCases := []testCase{
		{
			Items:       DefaultItems(),
			ExpectedErr: nil,
		},
		{
			Items: []Item{
				NewLeaf("About", "/about"),
				NewLeaf("About", "/about-us"),
			},
			ExpectedErr: ErrDuplicateLabel,
		},
		{
			Items: []Item{
				NewParent("Shop", "/shop",
					NewLeaf("Sale", "/shop/sale"),
					NewLeaf("Sale", "/shop/sale-2"),
				),
			},
			ExpectedErr: ErrDuplicateLabel,
		},
		{
			Items: []Item{
				NewParent("Shop", "/shop", NewLeaf("Shop", "/shop/shop")),
				NewLeaf("Sale", "/sale"),
			},
			ExpectedErr: nil,
		},
		{
			Items: []Item{
				NewLeaf(" ", "/blank"),
			},
			ExpectedErr: ErrEmptyLabel,
		},
		{
			Items: []Item{
				NewLeaf("External", "https://example.com"),
			},
			ExpectedErr: ErrInvalidHref,
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			_, err := NewCatalogue(tc.Items...)

			if tc.ExpectedErr == nil && err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedErr, err; e != nil && !errors.Is(g, e) {
				t.Errorf("err: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestCatalogueFind(t *testing.T) {
	catalogue := Default()

	item, exists := catalogue.Find("/categories/home-garden")
	if !exists {
		t.Fatalf("expected '/categories/home-garden' to be found")
	}

	if e, g := "Home & Garden", item.Label(); e != g {
		t.Errorf("item.Label(): expected '%v', got '%v'", e, g)
	}

	if _, exists := catalogue.Find("/checkout"); exists {
		t.Errorf("expected '/checkout' not to be found")
	}
}

func TestCatalogueLookup(t *testing.T) {
	catalogue := Default()

	item, exists := catalogue.Lookup("Shop")
	if !exists {
		t.Fatalf("expected 'Shop' to be found")
	}

	parent, ok := item.(Parent)
	if !ok {
		t.Fatalf("expected 'Shop' to be a parent, got %T", item)
	}

	if e, g := 4, len(parent.Children()); e != g {
		t.Errorf("len(parent.Children()): expected '%v', got '%v'", e, g)
	}

	item, exists = catalogue.Lookup("About")
	if !exists {
		t.Fatalf("expected 'About' to be found")
	}

	if _, ok := item.(Leaf); !ok {
		t.Errorf("expected 'About' to be a leaf, got %T", item)
	}

	if _, exists := catalogue.Lookup("New Arrivals"); exists {
		t.Errorf("expected child label not to resolve as top-level item")
	}
}
