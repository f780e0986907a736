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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	RacesSettled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRacesSettled,
			Help: HelpTextRacesSettled,
		},
	)

	WagersPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWagersPlaced,
			Help: HelpTextWagersPlaced,
		},
		[]string{LabelBetType},
	)

	WagersSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWagersSettled,
			Help: HelpTextWagersSettled,
		},
		[]string{LabelResolution},
	)

	WagersFlagged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWagersFlagged,
			Help: HelpTextWagersFlagged,
		},
	)

	PayoutsPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePayoutsPaid,
			Help: HelpTextPayoutsPaid,
		},
	)

	StakesCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStakesCollected,
			Help: HelpTextStakesCollected,
		},
	)

	SettlementDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSettlementDuration,
			Help:    HelpTextSettlementDuration,
			Buckets: SettlementLatencyBuckets,
		},
	)

	SettlementConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSettlementConflicts,
			Help: HelpTextSettlementConflicts,
		},
	)
)
