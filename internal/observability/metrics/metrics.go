// Package metrics bundles the prometheus instrumentation for the proposal
// pipeline.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles pipeline metrics.
type Metrics struct {
	CalculationsTotal   *prometheus.CounterVec
	CalculationDuration prometheus.Histogram
	GenerationsTotal    *prometheus.CounterVec
	SlideRendersTotal   prometheus.Counter
	ExportsTotal        *prometheus.CounterVec
	ActiveProgress      prometheus.Gauge
}

// New constructs and registers metrics.
func New() *Metrics {
	m := &Metrics{
		CalculationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wattplan_calculations_total",
				Help: "Total calculation runs by result",
			},
			[]string{"result"},
		),
		CalculationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wattplan_calculation_duration_seconds",
			Help:    "Calculation run duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		GenerationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wattplan_generations_total",
				Help: "Total slide generation jobs by status",
			},
			[]string{"status"},
		),
		SlideRendersTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wattplan_slide_renders_total",
			Help: "Total slides rendered",
		}),
		ExportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wattplan_exports_total",
				Help: "Total proposal exports by format",
			},
			[]string{"format"},
		),
		ActiveProgress: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wattplan_active_progress_records",
			Help: "Progress records currently tracked",
		}),
	}
	prometheus.MustRegister(
		m.CalculationsTotal,
		m.CalculationDuration,
		m.GenerationsTotal,
		m.SlideRendersTotal,
		m.ExportsTotal,
		m.ActiveProgress,
	)
	return m
}
