package brochure

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Form submission outcomes.
const (
	outcomeSuccess       = "success"
	outcomeInvalid       = "invalid"
	outcomeRateLimited   = "rate_limited"
	outcomeConfigError   = "config_error"
	outcomeUpstreamError = "upstream_error"
	outcomeError         = "error"
)

// Metrics holds the app's Prometheus collectors on a private registry, so
// several apps (and tests) can coexist in one process.
type Metrics struct {
	Registry    *prometheus.Registry
	Submissions *prometheus.CounterVec
	PageViews   *prometheus.CounterVec
}

// NewMetrics registers the app collectors on a new registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brochure",
			Name:      "form_submissions_total",
			Help:      "Form submissions by form and outcome.",
		}, []string{"form", "outcome"}),
		PageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brochure",
			Name:      "page_renders_total",
			Help:      "Rendered HTML pages by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(
		m.Submissions,
		m.PageViews,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func (m *Metrics) submission(form, outcome string) {
	m.Submissions.WithLabelValues(form, outcome).Inc()
}

func (m *Metrics) page(kind string) {
	m.PageViews.WithLabelValues(kind).Inc()
}
