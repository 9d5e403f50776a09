package storefront

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/shopvibe/internal/animation"
	"github.com/bornholm/shopvibe/internal/ui"
	"github.com/bornholm/shopvibe/pkg/log"
	"github.com/pkg/errors"
)

func (h *Handler) serveHome(w http.ResponseWriter, r *http.Request) {
	ctx, page, ok := h.mountPage(w, r)
	if !ok {
		return
	}

	data := HomeTemplateData{
		HeadTemplateData:    ui.HeadTemplateData{PageTitle: h.brand},
		NavbarTemplateData:  page.navbar,
		ScriptsTemplateData: page.scripts,
		HeroTitle:           HeroTitle,
		HeroSubtitle:        HeroSubtitle,
		Sections:            NewSections(),
	}

	h.metrics.PageView("home")

	if err := templates.ExecuteTemplate(w, "home", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		return
	}
}

// servePlaceholder renders catalogue destinations. Any other path is not
// found.
func (h *Handler) servePlaceholder(w http.ResponseWriter, r *http.Request) {
	href := "/" + r.PathValue("path")

	item, exists := h.catalogue.Find(href)
	if !exists {
		http.NotFound(w, r)
		return
	}

	ctx, page, ok := h.mountPage(w, r)
	if !ok {
		return
	}

	data := PlaceholderTemplateData{
		HeadTemplateData:    ui.HeadTemplateData{PageTitle: item.Label() + " - " + h.brand},
		NavbarTemplateData:  page.navbar,
		ScriptsTemplateData: page.scripts,
		Label:               item.Label(),
		Href:                item.Href(),
	}

	h.metrics.PageView("placeholder")

	if err := templates.ExecuteTemplate(w, "placeholder", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)), slog.String("href", href))
		return
	}
}

type mountedPage struct {
	navbar  ui.NavbarTemplateData
	scripts ui.ScriptsTemplateData
}

// mountPage mounts a navbar for the rendered page, collecting its entrance
// animations so they can be embedded in the page.
func (h *Handler) mountPage(w http.ResponseWriter, r *http.Request) (context.Context, *mountedPage, bool) {
	ctx := r.Context()

	visitorID, err := h.ensureVisitorID(w, r)
	if err != nil {
		slog.ErrorContext(ctx, "could not retrieve visitor", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return ctx, nil, false
	}

	recorder := animation.NewRecorder()
	ctx = animation.WithRecorder(ctx, recorder)
	ctx = log.WithAttrs(ctx, slog.String("visitor", visitorID))

	_, page := h.registry.Mount(ctx, visitorID)
	navbar := page.Navbar()

	slog.DebugContext(ctx, "navbar mounted", slog.String("navbar", navbar.ID()))

	return ctx, &mountedPage{
		navbar: navbar.View(),
		scripts: ui.ScriptsTemplateData{
			AnimationEvent:    h.animationEvent,
			InitialAnimations: recorder,
		},
	}, true
}
