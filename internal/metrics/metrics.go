package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	TreesResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTreesResolved,
			Help: HelpTextTreesResolved,
		},
		[]string{LabelRoot},
	)

	TreesTruncated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTreesTruncated,
			Help: HelpTextTreesTruncated,
		},
	)

	TreeDepth = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTreeDepth,
			Help:    HelpTextTreeDepth,
			Buckets: TreeDepthBuckets,
		},
	)

	TreeBaseMaterials = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTreeBaseMaterials,
			Help:    HelpTextTreeBaseMaterials,
			Buckets: BaseMaterialBuckets,
		},
	)

	SearchesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
	)

	ProjectsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProjectsCreated,
			Help: HelpTextProjectsCreated,
		},
	)
)

// Cache Metrics
var (
	CatalogCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCacheHits,
			Help: HelpTextCatalogCacheHits,
		},
		[]string{LabelCache},
	)

	CatalogCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCacheMiss,
			Help: HelpTextCatalogCacheMiss,
		},
		[]string{LabelCache},
	)
)

// RecordTreeResolved records the business metrics for one resolved tree.
func RecordTreeResolved(root string, steps, baseMaterials int, truncated bool) {
	TreesResolved.WithLabelValues(root).Inc()
	TreeDepth.Observe(float64(steps))
	TreeBaseMaterials.Observe(float64(baseMaterials))
	if truncated {
		TreesTruncated.Inc()
	}
}
