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

// Catalog Metrics
var (
	RecordsNormalized = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecordsNormalized,
			Help: HelpTextRecordsNormalized,
		},
	)

	FeedFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFeedFetches,
			Help: HelpTextFeedFetches,
		},
		[]string{LabelResult},
	)

	CollectionEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCollectionEvaluations,
			Help: HelpTextCollectionEvaluations,
		},
		[]string{LabelCollection},
	)
)

// Business Metrics
var (
	DomainsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDomainsClaimed,
			Help: HelpTextDomainsClaimed,
		},
	)

	RotationAssignments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRotationAssignments,
			Help: HelpTextRotationAssignments,
		},
		[]string{LabelGroup},
	)
)
