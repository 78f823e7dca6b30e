package metrics

// Metric names
const (
	MetricNameSyncPassesTotal       = "mapster_agent_sync_passes_total"
	MetricNameSyncPassDuration      = "mapster_agent_sync_pass_duration_seconds"
	MetricNameSyncedRecordsTotal    = "mapster_agent_synced_records_total"
	MetricNameSyncTimerRunning      = "mapster_agent_sync_timer_running"
	MetricNameSyncSkippedTotal      = "mapster_agent_sync_skipped_records_total"
	MetricNameInterceptedTotal      = "mapster_agent_intercepted_responses_total"
	MetricNameCacheInstallsTotal    = "mapster_agent_cache_installs_total"
	MetricNameCacheLookupsTotal     = "mapster_agent_cache_lookups_total"
	MetricNameSessionMessagesTotal  = "mapster_agent_session_messages_total"
	MetricNameLocalStoreErrorsTotal = "mapster_agent_local_store_errors_total"
)

// Metric help text
const (
	HelpTextSyncPassesTotal       = "Total number of sync passes by result"
	HelpTextSyncPassDuration      = "Sync pass latency in seconds"
	HelpTextSyncedRecordsTotal    = "Total number of itinerary records written by sync passes"
	HelpTextSyncTimerRunning      = "Whether the periodic sync timer is running"
	HelpTextSyncSkippedTotal      = "Total number of received itineraries dropped for a missing id or last-modified timestamp"
	HelpTextInterceptedTotal      = "Total number of intercepted requests by strategy and response source"
	HelpTextCacheInstallsTotal    = "Total number of asset cache installs by result"
	HelpTextCacheLookupsTotal     = "Total number of asset cache lookups by layer and result"
	HelpTextSessionMessagesTotal  = "Total number of foreground messages by kind"
	HelpTextLocalStoreErrorsTotal = "Total number of local store read failures answered with an empty result"
)

// Label names
const (
	LabelResult   = "result"
	LabelStrategy = "strategy"
	LabelSource   = "source"
	LabelLayer    = "layer"
	LabelKind     = "kind"
)

// Label values
const (
	ResultSuccess = "success"
	ResultEmpty   = "empty"
	ResultFailure = "failure"
	ResultHit     = "hit"
	ResultMiss    = "miss"

	StrategyNetworkFirst = "network_first"
	StrategyCacheFirst   = "cache_first"

	SourceNetwork     = "network"
	SourceCache       = "cache"
	SourceOffline     = "offline"
	SourceUnavailable = "unavailable"

	LayerMemory   = "memory"
	LayerDatabase = "database"
)

// SyncPassDurationBuckets covers a pass over a slow mobile link.
var SyncPassDurationBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}
