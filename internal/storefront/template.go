package storefront

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/bornholm/shopvibe/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

// SectionCount is the number of placeholder sections on the home page.
const SectionCount = 10

const (
	HeroTitle    = "Welcome to ShopVibe"
	HeroSubtitle = "Discover amazing products with our modern ecommerce experience"
)

// SectionTemplateData is one placeholder block of the home page
type SectionTemplateData struct {
	Position int
	Label    string
}

// HomeTemplateData contains the data needed to render the landing page
type HomeTemplateData struct {
	ui.HeadTemplateData
	ui.NavbarTemplateData
	ui.ScriptsTemplateData
	HeroTitle    string
	HeroSubtitle string
	Sections     []SectionTemplateData
}

// PlaceholderTemplateData contains the data needed to render a catalogue
// destination without content
type PlaceholderTemplateData struct {
	ui.HeadTemplateData
	ui.NavbarTemplateData
	ui.ScriptsTemplateData
	Label string
	Href  string
}

// NewSections returns the home page placeholder sections, labelled by their
// 1-based position.
func NewSections() []SectionTemplateData {
	sections := make([]SectionTemplateData, 0, SectionCount)

	for i := range SectionCount {
		sections = append(sections, SectionTemplateData{
			Position: i + 1,
			Label:    fmt.Sprintf("Content Section %d", i+1),
		})
	}

	return sections
}
