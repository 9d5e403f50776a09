package config

import (
	"github.com/bornholm/shopvibe/internal/nav"
	"github.com/goccy/go-yaml"
)

type Storefront struct {
	Brand      InterpolatedString `yaml:"brand"`
	CartCount  InterpolatedInt    `yaml:"cartCount"`
	Navigation []NavItem          `yaml:"navigation"`
}

type NavItem struct {
	Label    InterpolatedString `yaml:"label"`
	Href     InterpolatedString `yaml:"href"`
	Children []NavItem          `yaml:"children,omitempty"`
}

func NewDefaultStorefrontConfig() Storefront {
	return Storefront{
		Brand:      "${SHOPVIBE_BRAND:-ShopVibe}",
		CartCount:  3,
		Navigation: newNavItems(nav.DefaultItems()),
	}
}

func newNavItems(items []nav.Item) []NavItem {
	configured := make([]NavItem, 0, len(items))

	for _, item := range items {
		navItem := NavItem{
			Label: InterpolatedString(item.Label()),
			Href:  InterpolatedString(item.Href()),
		}

		if parent, ok := item.(nav.Parent); ok {
			navItem.Children = newNavItems(parent.Children())
		}

		configured = append(configured, navItem)
	}

	return configured
}

func NewStorefrontConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":            []*yaml.Comment{yaml.HeadComment(" Storefront configuration")},
		".brand":      []*yaml.Comment{yaml.HeadComment(" Brand displayed next to the logo")},
		".cartCount":  []*yaml.Comment{yaml.HeadComment(" Count displayed on the cart badge")},
		".navigation": []*yaml.Comment{yaml.HeadComment(" Navigation catalogue, items with children open a dropdown")},
	}
}
