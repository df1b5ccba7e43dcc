package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry      *prom.Registry
	cacheHits     prom.Counter
	cacheMisses   prom.Counter
	fetchDuration *prom.HistogramVec
	fetchResults  *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the loader metrics on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		cacheHits: prom.NewCounter(prom.CounterOpts{
			Namespace: "abxnav",
			Name:      "content_cache_hits_total",
			Help:      "Content loads served from the in-memory cache",
		}),
		cacheMisses: prom.NewCounter(prom.CounterOpts{
			Namespace: "abxnav",
			Name:      "content_cache_misses_total",
			Help:      "Content loads that required a fetch",
		}),
		fetchDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "abxnav",
			Name:      "content_fetch_duration_seconds",
			Help:      "Duration of content fetches",
			Buckets:   prom.DefBuckets,
		}, []string{"result"}),
		fetchResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "abxnav",
			Name:      "content_fetch_results_total",
			Help:      "Content fetches by outcome",
		}, []string{"result"}),
	}
	reg.MustRegister(pr.cacheHits, pr.cacheMisses, pr.fetchDuration, pr.fetchResults)
	return pr
}

func (p *PrometheusRecorder) IncCacheHit()  { p.cacheHits.Inc() }
func (p *PrometheusRecorder) IncCacheMiss() { p.cacheMisses.Inc() }

func (p *PrometheusRecorder) ObserveFetchDuration(d time.Duration, success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	p.fetchDuration.WithLabelValues(result).Observe(d.Seconds())
	p.fetchResults.WithLabelValues(result).Inc()
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.registry }

// Handler exposes the registry in the Prometheus text format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
