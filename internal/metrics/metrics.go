// Package metrics declares the Prometheus collectors of the offline agent.
// Collectors register with the default registry and are exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sync metrics
var (
	SyncPassesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSyncPassesTotal,
			Help: HelpTextSyncPassesTotal,
		},
		[]string{LabelResult},
	)

	SyncPassDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSyncPassDuration,
			Help:    HelpTextSyncPassDuration,
			Buckets: SyncPassDurationBuckets,
		},
	)

	SyncedRecordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSyncedRecordsTotal,
			Help: HelpTextSyncedRecordsTotal,
		},
	)

	SyncTimerRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSyncTimerRunning,
			Help: HelpTextSyncTimerRunning,
		},
	)

	SyncSkippedRecordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSyncSkippedTotal,
			Help: HelpTextSyncSkippedTotal,
		},
	)
)

// Interceptor and asset cache metrics
var (
	InterceptedResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInterceptedTotal,
			Help: HelpTextInterceptedTotal,
		},
		[]string{LabelStrategy, LabelSource},
	)

	CacheInstallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheInstallsTotal,
			Help: HelpTextCacheInstallsTotal,
		},
		[]string{LabelResult},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheLookupsTotal,
			Help: HelpTextCacheLookupsTotal,
		},
		[]string{LabelLayer, LabelResult},
	)
)

// Session metrics
var (
	SessionMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionMessagesTotal,
			Help: HelpTextSessionMessagesTotal,
		},
		[]string{LabelKind},
	)

	LocalStoreErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLocalStoreErrorsTotal,
			Help: HelpTextLocalStoreErrorsTotal,
		},
	)
)
