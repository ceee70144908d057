package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameTreesResolved     = "recipe_trees_resolved_total"
	MetricNameTreesTruncated    = "recipe_trees_truncated_total"
	MetricNameTreeDepth         = "recipe_tree_depth"
	MetricNameTreeBaseMaterials = "recipe_tree_base_materials"
	MetricNameSearchesPerformed = "searches_performed_total"
	MetricNameProjectsCreated   = "projects_created_total"
	MetricNameCatalogCacheHits  = "catalog_cache_hits_total"
	MetricNameCatalogCacheMiss  = "catalog_cache_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextTreesResolved     = "Total number of recipe trees resolved"
	HelpTextTreesTruncated    = "Total number of recipe trees truncated at the depth limit"
	HelpTextTreeDepth         = "Number of expansion steps in resolved recipe trees"
	HelpTextTreeBaseMaterials = "Number of distinct base materials in resolved recipe trees"
	HelpTextSearchesPerformed = "Total number of item searches performed"
	HelpTextProjectsCreated   = "Total number of crafting projects created"
	HelpTextCatalogCacheHits  = "Total number of catalog cache hits"
	HelpTextCatalogCacheMiss  = "Total number of catalog cache misses"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelRoot   = "root"
	LabelCache  = "cache"
)

// Values for the root label, naming what a tree was resolved from
const (
	RootItem   = "item"
	RootRecipe = "recipe"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TreeDepthBuckets covers the range of expansion depths up to the default
// depth limit.
var TreeDepthBuckets = []float64{1, 2, 3, 4, 5, 6, 8, 10, 15, 20}

// BaseMaterialBuckets covers typical distinct base material counts.
var BaseMaterialBuckets = []float64{1, 2, 4, 8, 16, 32, 64, 128}
