package covidabm

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler returns the standard Prometheus scrape handler for the
// default registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// Metrics exports per-tick observable outputs as Prometheus gauges,
// following the MetricsEnabled config toggle pattern used for optional
// instrumentation in the retrieved pack (99souls-ariadne/engine/config.go).
// The CLI creates one only when its -metrics-addr flag is set.
type Metrics struct {
	nCurrent  *prometheus.GaugeVec
	nTotal    *prometheus.GaugeVec
	cases     prometheus.Gauge
	quarantineDays prometheus.Gauge
}

// NewMetrics registers the simulation's gauges against the default
// Prometheus registry.
func NewMetrics() *Metrics {
	return &Metrics{
		nCurrent: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "covidabm_list_n_current",
			Help: "Current count of individuals in an event-list kind.",
		}, []string{"kind"}),
		nTotal: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "covidabm_list_n_total",
			Help: "Cumulative count ever added to an event-list kind.",
		}, []string{"kind"}),
		cases: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "covidabm_cases_total",
			Help: "Cumulative confirmed cases.",
		}),
		quarantineDays: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "covidabm_quarantine_person_days",
			Help: "Cumulative quarantine person-days.",
		}),
	}
}

// Observe publishes one tick's snapshot to the registered gauges.
func (m *Metrics) Observe(snap TickSnapshot) {
	for k := ListKind(0); k < numListKinds; k++ {
		m.nCurrent.WithLabelValues(k.String()).Set(float64(snap.NCurrent[k]))
		m.nTotal.WithLabelValues(k.String()).Set(float64(snap.NTotal[k]))
	}
	m.cases.Set(float64(snap.CaseCount))
	m.quarantineDays.Set(float64(snap.QuarantinePersonDays))
}
