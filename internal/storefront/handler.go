package storefront

import (
	"net/http"

	"github.com/bornholm/shopvibe/internal/metrics"
	"github.com/bornholm/shopvibe/internal/nav"
	"github.com/bornholm/shopvibe/internal/ratelimit"
	"github.com/bornholm/shopvibe/internal/visitor"
	"github.com/gorilla/sessions"
	"golang.org/x/time/rate"
)

type Handler struct {
	mux            *http.ServeMux
	registry       *visitor.Registry
	catalogue      *nav.Catalogue
	sessionStore   sessions.Store
	sessionName    string
	brand          string
	animationEvent string
	metrics        *metrics.Metrics
	limiter        *ratelimit.RateLimiter
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(registry *visitor.Registry, catalogue *nav.Catalogue, sessionStore sessions.Store, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	handler := &Handler{
		mux:            &http.ServeMux{},
		registry:       registry,
		catalogue:      catalogue,
		sessionStore:   sessionStore,
		sessionName:    opts.SessionName,
		brand:          opts.Brand,
		animationEvent: opts.AnimationEvent,
		metrics:        opts.Metrics,
		limiter:        opts.RateLimiter,
	}

	if handler.limiter == nil {
		handler.limiter = ratelimit.New(rate.Limit(opts.RateLimit), opts.RateBurst)
	}

	// Pages
	handler.mux.HandleFunc("GET /{$}", handler.serveHome)
	handler.mux.HandleFunc("GET /{path...}", handler.servePlaceholder)

	// Navbar events
	limited := handler.limiter.Middleware(handler.rateLimitKey)

	handler.mux.Handle("POST /navbar/scroll", limited(handler.navbarEvent("scroll", handler.handleScroll)))
	handler.mux.Handle("POST /navbar/dropdown", limited(handler.navbarEvent("dropdown", handler.handleDropdown)))
	handler.mux.Handle("POST /navbar/search/open", limited(handler.navbarEvent("search-open", handler.handleSearchOpen)))
	handler.mux.Handle("POST /navbar/search/close", limited(handler.navbarEvent("search-close", handler.handleSearchClose)))
	handler.mux.Handle("POST /navbar/mobile/toggle", limited(handler.navbarEvent("mobile-toggle", handler.handleMobileToggle)))
	handler.mux.Handle("POST /navbar/mobile/follow", limited(handler.navbarEvent("mobile-follow", handler.handleMobileFollow)))
	handler.mux.HandleFunc("POST /navbar/unmount", handler.handleUnmount)

	return handler
}

var _ http.Handler = &Handler{}
