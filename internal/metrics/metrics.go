package metrics

import (
	"blockvault/internal/core"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "blockvault"

// Metrics records crawl and HTTP activity on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	blocksTotal         *prometheus.CounterVec
	fetchAttempts       prometheus.Histogram
	lastProcessedBlock  prometheus.Gauge
	runsTotal           *prometheus.CounterVec
	runDuration         prometheus.Histogram
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		blocksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "blocks_total", Help: "Blocks processed by outcome"},
			[]string{"status"},
		),
		fetchAttempts: prometheus.NewHistogram(
			prometheus.HistogramOpts{Namespace: namespace, Name: "block_fetch_attempts", Help: "Node fetch attempts per fetched block", Buckets: []float64{1, 2, 3, 5, 8}},
		),
		lastProcessedBlock: prometheus.NewGauge(
			prometheus.GaugeOpts{Namespace: namespace, Name: "last_processed_block", Help: "Highest block number processed"},
		),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "crawl_runs_total", Help: "Finished crawl runs"},
			[]string{"complete"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{Namespace: namespace, Name: "crawl_run_duration_seconds", Help: "Crawl run latency", Buckets: prometheus.ExponentialBuckets(0.1, 4, 8)},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests"},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "Request latency", Buckets: prometheus.DefBuckets},
			[]string{"method", "route"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.blocksTotal,
		m.fetchAttempts,
		m.lastProcessedBlock,
		m.runsTotal,
		m.runDuration,
		m.httpRequestsTotal,
		m.httpRequestDuration,
	)

	return m
}

func (m *Metrics) OnBlock(outcome core.BlockOutcome) {
	m.blocksTotal.WithLabelValues(string(outcome.Status)).Inc()
	if outcome.Attempts > 0 {
		m.fetchAttempts.Observe(float64(outcome.Attempts))
	}
	m.lastProcessedBlock.Set(float64(outcome.Number))
}

func (m *Metrics) OnRunFinished(summary core.RunSummary) {
	m.runsTotal.WithLabelValues(strconv.FormatBool(summary.Complete())).Inc()
	m.runDuration.Observe(summary.Elapsed.Seconds())
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
