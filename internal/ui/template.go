package ui

import (
	"embed"
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/Masterminds/sprig/v3"
	"github.com/dustin/go-humanize"
	"github.com/laher/mergefs"
	"github.com/pkg/errors"
)

//go:embed templates/**
var commonFs embed.FS

//go:embed static/**
var staticFs embed.FS

var commonFuncs = template.FuncMap{
	"humanizeInt": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"slug":               Slug,
	"dropdownID":         DropdownElementID,
	"dropdownItemID":     DropdownItemElementID,
	"mobileItemID":       MobileItemElementID,
	"navbarID":           func() string { return NavbarElementID },
	"navbarLogoID":       func() string { return NavbarLogoElementID },
	"navbarCartCountID":  func() string { return NavbarCartCountElementID },
	"navbarSearchID":     func() string { return NavbarSearchElementID },
	"navbarMobilePanel":  func() string { return NavbarMobilePanelID },
	"navbarMobileSearch": func() string { return NavbarMobileSearchID },
	"navbarSearchInput":  func() string { return NavbarSearchInputID },
	"navbarMobileInput":  func() string { return NavbarMobileSearchInput },
	"navbarSync":         func() string { return NavbarSync },
	"navbarInstanceHeaders": func(instanceID string) (string, error) {
		data, err := json.Marshal(map[string]string{NavbarInstanceHeader: instanceID})
		if err != nil {
			return "", errors.WithStack(err)
		}

		return string(data), nil
	},
	"add": func(a, b int) int {
		return a + b
	},
	"json": func(v any) (template.JS, error) {
		data, err := json.Marshal(v)
		if err != nil {
			return "", errors.WithStack(err)
		}

		return template.JS(data), nil
	},
}

func Templates(funcs template.FuncMap, filesystems ...fs.FS) (*template.Template, error) {
	filesystems = append([]fs.FS{commonFs}, filesystems...)
	merged := mergefs.Merge(filesystems...)

	views, err := fs.Glob(merged, "**/views/*.gohtml")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	layouts, err := fs.Glob(merged, "**/layouts/*.gohtml")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	templates := append(views, layouts...)

	tmpl := template.New("").Funcs(sprig.FuncMap()).Funcs(commonFuncs)

	if funcs != nil {
		tmpl = tmpl.Funcs(funcs)
	}

	tmpl, err = tmpl.ParseFS(merged, templates...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tmpl, nil
}

// StaticHandler serves the embedded client assets under prefix.
func StaticHandler(prefix string) http.Handler {
	sub, err := fs.Sub(staticFs, "static")
	if err != nil {
		panic(errors.WithStack(err))
	}

	return http.StripPrefix(prefix, http.FileServerFS(sub))
}

type HeadTemplateData struct {
	PageTitle string
}

// ScriptsTemplateData carries the animation commands to play once the page
// has loaded, keyed by client event name.
type ScriptsTemplateData struct {
	AnimationEvent    string
	InitialAnimations any
}
