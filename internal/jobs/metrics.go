package jobmetrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors for background jobs.
type Metrics struct {
	runs     *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
	lowStock prometheus.Gauge
	sales    *prometheus.GaugeVec
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// NewMetrics registers the job metrics against the provided registerer. When the
// registerer is nil the default Prometheus registerer is used.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		defaultOnce.Do(func() {
			defaultMetrics = buildMetrics(prometheus.DefaultRegisterer)
		})
		return defaultMetrics
	}
	return buildMetrics(registerer)
}

// Run instruments a single job execution.
type Run struct {
	metrics *Metrics
	job     string
	start   time.Time
}

// Track starts a Run for the given job name.
func (m *Metrics) Track(job string) *Run {
	if m == nil {
		return &Run{job: job, start: time.Now()}
	}
	return &Run{metrics: m, job: job, start: time.Now()}
}

// End records duration and outcome, returning err untouched.
func (r *Run) End(err error) error {
	if r == nil || r.metrics == nil || r.job == "" {
		return err
	}
	status := "success"
	if err != nil {
		status = "failure"
		r.metrics.failures.WithLabelValues(r.job).Inc()
	}
	r.metrics.runs.WithLabelValues(r.job, status).Inc()
	r.metrics.duration.WithLabelValues(r.job).Observe(time.Since(r.start).Seconds())
	return err
}

// SetLowStock publishes the product count found by the last low-stock scan.
func (m *Metrics) SetLowStock(count int) {
	if m == nil {
		return
	}
	m.lowStock.Set(float64(count))
}

// SetDailySales publishes the last daily summary figures.
func (m *Metrics) SetDailySales(count int, total float64) {
	if m == nil {
		return
	}
	m.sales.WithLabelValues("count").Set(float64(count))
	m.sales.WithLabelValues("total").Set(total)
}

func buildMetrics(registerer prometheus.Registerer) *Metrics {
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tracker_jobs_total",
		Help: "Total job executions partitioned by job name and status.",
	}, []string{"job", "status"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tracker_jobs_failures_total",
		Help: "Total failures observed for background jobs.",
	}, []string{"job"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tracker_job_duration_seconds",
		Help:    "Duration in seconds of background job executions.",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
	lowStock := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tracker_low_stock_products",
		Help: "Products at or below the low-stock threshold at the last scan.",
	})
	sales := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tracker_daily_sales",
		Help: "Sales count and total for the last summarised day.",
	}, []string{"figure"})
	registerer.MustRegister(runs, failures, duration, lowStock, sales)
	return &Metrics{runs: runs, failures: failures, duration: duration, lowStock: lowStock, sales: sales}
}
