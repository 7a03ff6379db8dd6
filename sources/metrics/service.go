package metrics

import (
	"declension/sources/tracing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type MetricsService struct {
	log *tracing.Logger
}

var (
	selections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "declension_selections_total",
			Help: "Total number of plural form selections",
		},
		[]string{"category"},
	)

	invalidFormSets = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "declension_invalid_form_sets_total",
			Help: "Total number of selections rejected because of a short form set",
		},
	)

	unknownWords = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "declension_unknown_words_total",
			Help: "Total number of dictionary lookups for unknown words",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "declension_http_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"status"},
	)

	httpRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "declension_http_request_duration_seconds",
			Help:    "Duration of API requests",
			Buckets: prometheus.DefBuckets,
		},
	)

	throttledRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "declension_throttled_requests_total",
			Help: "Total number of API requests rejected by the throttler",
		},
	)
)

func init() {
	prometheus.MustRegister(selections)
	prometheus.MustRegister(invalidFormSets)
	prometheus.MustRegister(unknownWords)
	prometheus.MustRegister(httpRequests)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(throttledRequests)
}

func NewMetricsService(log *tracing.Logger) *MetricsService {
	return &MetricsService{
		log: log,
	}
}

func (s *MetricsService) RecordSelection(category string) {
	selections.WithLabelValues(category).Inc()
}

func (s *MetricsService) RecordInvalidFormSet() {
	invalidFormSets.Inc()
}

func (s *MetricsService) RecordUnknownWord() {
	unknownWords.Inc()
}

func (s *MetricsService) RecordHttpRequest(status int, duration time.Duration) {
	httpRequests.WithLabelValues(statusClass(status)).Inc()
	httpRequestDuration.Observe(duration.Seconds())
}

func (s *MetricsService) RecordThrottled() {
	throttledRequests.Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
