package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shopvibe"

// Metrics holds the storefront collectors, registered on their own
// registry.
type Metrics struct {
	registry     *prometheus.Registry
	navbarEvents *prometheus.CounterVec
	pageViews    *prometheus.CounterVec
	visitors     prometheus.GaugeFunc
}

// New creates the collectors. visitors reports the number of tracked
// visitors at scrape time.
func New(visitors func() float64) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		navbarEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "navbar",
			Name:      "events_total",
			Help:      "Navbar interaction events handled, by event.",
		}, []string{"event"}),
		pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Rendered pages, by page.",
		}, []string{"page"}),
		visitors: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "visitors",
			Help:      "Visitors currently tracked.",
		}, visitors),
	}

	registry.MustRegister(
		m.navbarEvents,
		m.pageViews,
		m.visitors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) NavbarEvent(event string) {
	if m == nil {
		return
	}

	m.navbarEvents.WithLabelValues(event).Inc()
}

func (m *Metrics) PageView(page string) {
	if m == nil {
		return
	}

	m.pageViews.WithLabelValues(page).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
