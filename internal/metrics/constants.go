package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal     = "scavrack_http_requests_total"
	MetricNameHTTPRequestDuration   = "scavrack_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight  = "scavrack_http_requests_in_flight"
	MetricNameRecordsNormalized     = "scavrack_records_normalized_total"
	MetricNameFeedFetches           = "scavrack_feed_fetches_total"
	MetricNameCollectionEvaluations = "scavrack_collection_evaluations_total"
	MetricNameDomainsClaimed        = "scavrack_domains_claimed_total"
	MetricNameRotationAssignments   = "scavrack_rotation_assignments_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal     = "Total number of HTTP requests processed"
	HelpTextHTTPRequestDuration   = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight  = "Number of HTTP requests currently being served"
	HelpTextRecordsNormalized     = "Total number of raw listing records normalized"
	HelpTextFeedFetches           = "Total number of listing feed fetches by result"
	HelpTextCollectionEvaluations = "Total number of collection rule evaluations by collection"
	HelpTextDomainsClaimed        = "Total number of domains claimed"
	HelpTextRotationAssignments   = "Total number of rotation assignments by group"
)

// Label names
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelResult     = "result"
	LabelCollection = "collection"
	LabelGroup      = "group"
)

// Label values for feed fetch results
const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultCache = "cache"
)

// HTTPLatencyBuckets covers the in-memory fast path up through slow upstream
// feed fetches.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
