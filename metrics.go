package docserv

import "github.com/prometheus/client_golang/prometheus"

// Page render outcomes.
const (
	outcomeOK            = "ok"
	outcomeNotFound      = "not_found"
	outcomeTemplateError = "template_error"
)

type metrics struct {
	renders *prometheus.CounterVec
	listed  prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docserv_page_renders_total",
				Help: "Total number of page render attempts by outcome",
			},
			[]string{"outcome"},
		),
		listed: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "docserv_listing_pages",
				Help: "Number of pages in the most recent listing",
			},
		),
	}
	reg.MustRegister(m.renders, m.listed)
	return m
}
