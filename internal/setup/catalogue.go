package setup

import (
	"context"

	"github.com/bornholm/shopvibe/internal/config"
	"github.com/bornholm/shopvibe/internal/nav"
	"github.com/pkg/errors"
)

var NewCatalogueFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*nav.Catalogue, error) {
	catalogue, err := nav.NewCatalogue(navItemsFromConfig(conf.Storefront.Navigation)...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid navigation catalogue")
	}

	return catalogue, nil
})

// navItemsFromConfig converts the configured navigation. Items without
// children are leaves.
func navItemsFromConfig(configured []config.NavItem) []nav.Item {
	items := make([]nav.Item, 0, len(configured))

	for _, c := range configured {
		if len(c.Children) == 0 {
			items = append(items, nav.NewLeaf(string(c.Label), string(c.Href)))
			continue
		}

		items = append(items, nav.NewParent(string(c.Label), string(c.Href), navItemsFromConfig(c.Children)...))
	}

	return items
}
