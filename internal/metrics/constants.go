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
	MetricNameEventsPublished = "events_published_total"
)

// Garden metric names
const (
	MetricNameHarvests             = "garden_harvests_total"
	MetricNameCurrencyEarned       = "garden_currency_earned_total"
	MetricNameCurrencySpent        = "garden_currency_spent_total"
	MetricNameUpgradesPurchased    = "garden_upgrades_purchased_total"
	MetricNamePrestiges            = "garden_prestiges_total"
	MetricNameAchievementsUnlocked = "garden_achievements_unlocked_total"
	MetricNameTickDuration         = "garden_tick_duration_seconds"
)

// Persistence metric names
const (
	MetricNameSaves        = "garden_saves_total"
	MetricNameSaveLoads    = "garden_save_loads_total"
	MetricNameCorruptSlots = "garden_corrupt_save_slots_total"
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
	HelpTextEventsPublished = "Total number of events published"
)

// Garden metric help text
const (
	HelpTextHarvests             = "Total number of crops harvested"
	HelpTextCurrencyEarned       = "Total currency earned by source"
	HelpTextCurrencySpent        = "Total currency spent on upgrades"
	HelpTextUpgradesPurchased    = "Total number of upgrade levels bought"
	HelpTextPrestiges            = "Total number of prestiges performed"
	HelpTextAchievementsUnlocked = "Total number of achievements unlocked"
	HelpTextTickDuration         = "Duration of one simulation step in seconds"
)

// Persistence metric help text
const (
	HelpTextSaves        = "Total number of save attempts by result"
	HelpTextSaveLoads    = "Total number of save loads by the slot that was used"
	HelpTextCorruptSlots = "Total number of unreadable save slots found while loading"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelPlant       = "plant"
	LabelSource      = "source"
	LabelUpgrade     = "upgrade"
	LabelAchievement = "achievement"
	LabelResult      = "result"
	LabelSlot        = "slot"
)

// Currency sources
const (
	SourceHarvestManual = "harvest_manual"
	SourceHarvestAuto   = "harvest_auto"
	SourceOffline       = "offline"
)

// Save results
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// unmatchedRoute labels requests that matched no route
const unmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickBuckets covers simulation steps from 10µs to 100ms
var TickBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
)
