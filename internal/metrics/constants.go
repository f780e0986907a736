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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameRacesSettled        = "races_settled_total"
	MetricNameWagersPlaced        = "wagers_placed_total"
	MetricNameWagersSettled       = "wagers_settled_total"
	MetricNameWagersFlagged       = "wagers_flagged_total"
	MetricNamePayoutsPaid         = "payouts_paid_total"
	MetricNameStakesCollected     = "stakes_collected_total"
	MetricNameSettlementDuration  = "settlement_duration_seconds"
	MetricNameSettlementConflicts = "settlement_conflicts_total"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextRacesSettled        = "Total number of races settled"
	HelpTextWagersPlaced        = "Total number of wagers placed"
	HelpTextWagersSettled       = "Total number of wagers settled"
	HelpTextWagersFlagged       = "Total number of wagers flagged for manual review"
	HelpTextPayoutsPaid         = "Total winnings credited, in minor currency units"
	HelpTextStakesCollected     = "Total stakes collected, in minor currency units"
	HelpTextSettlementDuration  = "Race settlement latency in seconds"
	HelpTextSettlementConflicts = "Total settlements rejected by concurrent completion"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelBetType    = "bet_type"
	LabelResolution = "resolution"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SettlementLatencyBuckets covers the expected settlement range. Settling a
// race with thousands of wagers can take seconds.
var SettlementLatencyBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
