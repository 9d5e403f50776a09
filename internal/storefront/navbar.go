package storefront

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bornholm/shopvibe/internal/animation"
	"github.com/bornholm/shopvibe/internal/navbar"
	"github.com/bornholm/shopvibe/internal/ui"
	"github.com/bornholm/shopvibe/internal/visitor"
	"github.com/bornholm/shopvibe/pkg/log"
	"github.com/pkg/errors"
)

var (
	errInvalidInput = errors.New("invalid input")
	// errUnchanged signals an event that left the navbar as rendered
	errUnchanged = errors.New("navbar unchanged")
)

type navbarEventFunc func(ctx context.Context, w http.ResponseWriter, r *http.Request, p *visitor.Page, n *navbar.Navbar) error

// pageID returns the navbar instance the request was sent from.
func pageID(r *http.Request) string {
	if id := r.Header.Get(ui.NavbarInstanceHeader); id != "" {
		return id
	}

	return r.FormValue(ui.NavbarInstanceField)
}

// navbarEvent resolves the navbar of the page the request was sent from,
// applies fn and answers with the re-rendered navbar. Animations played
// while applying fn are forwarded to the browser after the swap.
func (h *Handler) navbarEvent(event string, fn navbarEventFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		visitorID, err := h.visitorID(r)
		if err != nil {
			h.remountRequired(w)
			return
		}

		page, err := h.registry.Get(visitorID, pageID(r))
		if err != nil {
			if errors.Is(err, visitor.ErrNotMounted) {
				h.remountRequired(w)
				return
			}

			slog.ErrorContext(ctx, "could not retrieve navbar", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		n := page.Navbar()

		recorder := animation.NewRecorder()
		ctx = animation.WithRecorder(ctx, recorder)
		ctx = log.WithAttrs(ctx,
			slog.String("visitor", visitorID),
			slog.String("navbar", n.ID()),
			slog.String("event", event),
		)

		if err := fn(ctx, w, r, page, n); err != nil {
			if errors.Is(err, errUnchanged) {
				h.metrics.NavbarEvent(event)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			if errors.Is(err, errInvalidInput) {
				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
				return
			}

			slog.ErrorContext(ctx, "could not handle navbar event", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		h.metrics.NavbarEvent(event)

		h.renderNavbar(ctx, w, n, recorder)
	})
}

func (h *Handler) remountRequired(w http.ResponseWriter) {
	w.Header().Set("HX-Refresh", "true")
	http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
}

func (h *Handler) renderNavbar(ctx context.Context, w http.ResponseWriter, n *navbar.Navbar, recorder *animation.Recorder) {
	if !recorder.Empty() {
		trigger, err := json.Marshal(recorder)
		if err != nil {
			// Animations are cosmetic, the navbar is still rendered
			slog.WarnContext(ctx, "could not encode animations", log.Error(errors.WithStack(err)))
		} else {
			w.Header().Set("HX-Trigger-After-Swap", string(trigger))
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.ExecuteTemplate(w, "navbar", n.View()); err != nil {
		slog.ErrorContext(ctx, "could not execute navbar template", log.Error(errors.WithStack(err)))
		return
	}
}

func (h *Handler) handleScroll(ctx context.Context, w http.ResponseWriter, r *http.Request, p *visitor.Page, n *navbar.Navbar) error {
	offset, err := strconv.Atoi(r.FormValue("offset"))
	if err != nil {
		return errors.Wrapf(errInvalidInput, "could not parse offset '%s'", r.FormValue("offset"))
	}

	wasScrolled := n.State().IsScrolled

	p.Viewport().Publish(offset)

	if n.State().IsScrolled == wasScrolled {
		return errors.WithStack(errUnchanged)
	}

	return nil
}

const (
	pointerEnter = "mouseenter"
	pointerLeave = "mouseleave"
)

func (h *Handler) handleDropdown(ctx context.Context, w http.ResponseWriter, r *http.Request, p *visitor.Page, n *navbar.Navbar) error {
	switch event := r.FormValue("event"); event {
	case pointerEnter:
		n.EnterItem(ctx, r.FormValue("label"))
	case pointerLeave:
		n.LeaveItem(ctx)
	default:
		return errors.Wrapf(errInvalidInput, "unexpected pointer event '%s'", event)
	}

	return nil
}

func (h *Handler) handleSearchOpen(ctx context.Context, w http.ResponseWriter, r *http.Request, p *visitor.Page, n *navbar.Navbar) error {
	n.OpenSearch(ctx)
	return nil
}

func (h *Handler) handleSearchClose(ctx context.Context, w http.ResponseWriter, r *http.Request, p *visitor.Page, n *navbar.Navbar) error {
	n.CloseSearch(ctx)
	return nil
}

func (h *Handler) handleMobileToggle(ctx context.Context, w http.ResponseWriter, r *http.Request, p *visitor.Page, n *navbar.Navbar) error {
	n.ToggleMobileMenu(ctx)
	return nil
}

func (h *Handler) handleMobileFollow(ctx context.Context, w http.ResponseWriter, r *http.Request, p *visitor.Page, n *navbar.Navbar) error {
	href := r.FormValue("href")

	if _, exists := h.catalogue.Find(href); !exists {
		return errors.Wrapf(errInvalidInput, "unknown destination '%s'", href)
	}

	n.FollowMobileLink(ctx)

	w.Header().Set("HX-Redirect", href)

	return nil
}

func (h *Handler) handleUnmount(w http.ResponseWriter, r *http.Request) {
	visitorID, err := h.visitorID(r)
	if err == nil {
		h.registry.Unmount(visitorID, pageID(r))
	}

	w.WriteHeader(http.StatusNoContent)
}
