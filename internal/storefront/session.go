package storefront

import (
	"net"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/xid"
)

const sessionKeyVisitor = "visitor"

var errNoVisitor = errors.New("no visitor in session")

// ensureVisitorID returns the visitor id stored in the session, creating
// and saving a new one when missing. It must be called before the
// response body is written.
func (h *Handler) ensureVisitorID(w http.ResponseWriter, r *http.Request) (string, error) {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		// An undecodable cookie yields a new, empty session
		sess, err = h.sessionStore.New(r, h.sessionName)
		if sess == nil {
			return "", errors.WithStack(err)
		}
	}

	if id, ok := sess.Values[sessionKeyVisitor].(string); ok && id != "" {
		return id, nil
	}

	id := xid.New().String()
	sess.Values[sessionKeyVisitor] = id

	if err := sess.Save(r, w); err != nil {
		return "", errors.Wrap(err, "could not save visitor session")
	}

	return id, nil
}

// visitorID returns the visitor id stored in the session without creating
// one.
func (h *Handler) visitorID(r *http.Request) (string, error) {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return "", errors.WithStack(errNoVisitor)
	}

	id, ok := sess.Values[sessionKeyVisitor].(string)
	if !ok || id == "" {
		return "", errors.WithStack(errNoVisitor)
	}

	return id, nil
}

// VisitorRateLimitKey returns the rate limiter key of a visitor, so that
// its bucket can be forgotten once the visitor is evicted.
func VisitorRateLimitKey(visitorID string) string {
	return "visitor-" + visitorID
}

// rateLimitKey keys requests by visitor, or by client host when the
// request carries no session.
func (h *Handler) rateLimitKey(r *http.Request) (string, error) {
	id, err := h.visitorID(r)
	if err == nil {
		return VisitorRateLimitKey(id), nil
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	return "addr-" + host, nil
}
