package ui

import (
	"fmt"
	"strings"
	"unicode"
)

// NavbarItem is one rendered navigation entry.
type NavbarItem struct {
	Index        int
	Label        string
	URL          string
	Children     []NavbarItem
	DropdownOpen bool
	// Delay is the entrance delay of a dropdown child, in seconds
	Delay float64
}

func (i NavbarItem) HasChildren() bool {
	return len(i.Children) > 0
}

type NavbarTemplateData struct {
	InstanceID     string
	Brand          string
	HeaderClass    string
	Scrolled       bool
	Items          []NavbarItem
	SearchOpen     bool
	MobileMenuOpen bool
	CartCount      int
}

const (
	NavbarElementID          = "navbar"
	NavbarLogoElementID      = "navbar-logo"
	NavbarCartCountElementID = "navbar-cart-count"
	NavbarSearchElementID    = "navbar-search"
	NavbarMobilePanelID      = "navbar-mobile-panel"
	NavbarMobileSearchID     = "navbar-mobile-search"
	NavbarSearchInputID      = "navbar-search-input"
	NavbarMobileSearchInput  = "navbar-mobile-search-input"
)

const (
	// NavbarInstanceHeader carries the id of the navbar instance a request
	// is sent from.
	NavbarInstanceHeader = "X-Navbar-Instance"
	// NavbarInstanceField carries the same id in form bodies.
	NavbarInstanceField = "instance"
	// NavbarSync serializes the requests of one navbar, keeping the last
	// pending one only.
	NavbarSync = "closest nav:queue last"
)

func DropdownElementID(label string) string {
	return "navbar-dropdown-" + Slug(label)
}

func DropdownItemElementID(label string, index int) string {
	return fmt.Sprintf("%s-%d", DropdownElementID(label), index)
}

func MobileItemElementID(index int) string {
	return fmt.Sprintf("navbar-mobile-item-%d", index)
}

// Slug lowercases label and joins its alphanumeric runs with dashes.
func Slug(label string) string {
	var sb strings.Builder

	dash := false
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && sb.Len() > 0 {
				sb.WriteRune('-')
			}
			dash = false
			sb.WriteRune(r)
			continue
		}

		dash = true
	}

	return sb.String()
}
