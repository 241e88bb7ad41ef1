package metrics

import (
	coremetrics "github.com/kagankarabayir/EV-Price-Estimator/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records valuation events in Prometheus metrics.
type PromSink struct {
	valuations *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	rows       *prometheus.GaugeVec
}

// NewPromSink registers valuation metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	valuations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "valuations_total",
		Help: "Total number of answered valuation requests",
	}, []string{"outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "valuation_duration_seconds",
		Help:    "Time spent computing a valuation",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	rows := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "catalog_rows",
		Help: "Number of reference catalog rows, labelled by the source that produced them",
	}, []string{"source"})

	if err := reg.Register(valuations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			valuations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(latency); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			latency = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(rows); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			rows = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{valuations: valuations, latency: latency, rows: rows}, nil
}

// RecordValuation increments the outcome counter and observes the latency.
func (s *PromSink) RecordValuation(ev coremetrics.ValuationEvent) {
	s.valuations.WithLabelValues(string(ev.Outcome)).Inc()
	s.latency.WithLabelValues(string(ev.Outcome)).Observe(ev.Duration.Seconds())
}

// RecordCatalog publishes the built catalog size under its source label.
func (s *PromSink) RecordCatalog(source string, rows int) {
	s.rows.WithLabelValues(source).Set(float64(rows))
}
