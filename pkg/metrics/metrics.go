// Package metrics holds shared metric constants used when registering
// instruments across the application.
package metrics

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const (
	// LookupDurationMetric measures the latency of one provider lookup call.
	LookupDurationMetric = "lookup_provider_duration_seconds"
	// LookupFailuresMetric counts provider lookup calls that degraded to an
	// unknown result.
	LookupFailuresMetric = "lookup_provider_failures_total"
)
