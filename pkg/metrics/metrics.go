// Package metrics holds Prometheus collectors shared across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that
// can be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// RedirectsTotal counts redirect resolutions by outcome
	// (redirected, not_found, disabled).
	RedirectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shortener_redirects_total",
		Help: "Redirect resolutions by outcome.",
	}, []string{"outcome"})

	// VisitsRecordedTotal counts visits persisted by the redirect path,
	// split by bot classification.
	VisitsRecordedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shortener_visits_recorded_total",
		Help: "Visits recorded by the redirect path.",
	}, []string{"potential_bot"})

	// TitleResolutionsTotal counts background title resolutions by result
	// (resolved, skipped, failed).
	TitleResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shortener_title_resolutions_total",
		Help: "Background page-title resolutions by result.",
	}, []string{"result"})
)
