package pprof

import (
	"expvar"
	"fmt"
	"net/http"
	"net/http/pprof"
	"sync"
)

// Handler exposes the runtime profiles and the expvar variables under a
// prefix.
type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(prefix string) *Handler {
	mux := &http.ServeMux{}

	mux.HandleFunc(fmt.Sprintf("GET %s/{$}", prefix), pprof.Index)
	mux.HandleFunc(fmt.Sprintf("GET %s/cmdline", prefix), pprof.Cmdline)
	mux.HandleFunc(fmt.Sprintf("GET %s/profile", prefix), pprof.Profile)
	mux.HandleFunc(fmt.Sprintf("GET %s/symbol", prefix), pprof.Symbol)
	mux.HandleFunc(fmt.Sprintf("POST %s/symbol", prefix), pprof.Symbol)
	mux.HandleFunc(fmt.Sprintf("GET %s/trace", prefix), pprof.Trace)
	mux.Handle(fmt.Sprintf("GET %s/vars", prefix), expvar.Handler())

	mux.HandleFunc(fmt.Sprintf("GET %s/{name}", prefix), func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		pprof.Handler(name).ServeHTTP(w, r)
	})

	return &Handler{mux}
}

var publishMu sync.Mutex

// PublishFunc exposes fn as an expvar variable. Publishing an already
// known name replaces nothing and is ignored.
func PublishFunc(name string, fn func() any) {
	publishMu.Lock()
	defer publishMu.Unlock()

	if expvar.Get(name) != nil {
		return
	}

	expvar.Publish(name, expvar.Func(fn))
}

var _ http.Handler = &Handler{}
