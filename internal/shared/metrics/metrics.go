package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	syncSucceededTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "user_sync_succeeded_total",
		Help: "Total identity events synced into users",
	})
	syncRejectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "user_sync_rejected_total",
		Help: "Total identity events rejected before the store write",
	})
	syncFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "user_sync_failed_total",
		Help: "Total identity events whose store write failed",
	})
	syncDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "user_sync_duration_ms",
		Help:    "User sync duration in milliseconds",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})
)

func init() {
	registry.MustRegister(
		syncSucceededTotal,
		syncRejectedTotal,
		syncFailedTotal,
		syncDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// IncSyncSucceeded counts a user row written (or already present under the ignore policy).
func IncSyncSucceeded() {
	syncSucceededTotal.Inc()
}

// IncSyncRejected counts a payload refused before any store write.
func IncSyncRejected() {
	syncRejectedTotal.Inc()
}

// IncSyncFailed counts a store write that failed.
func IncSyncFailed() {
	syncFailedTotal.Inc()
}

// ObserveSyncDurationMs records a sync duration in milliseconds.
func ObserveSyncDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	syncDuration.Observe(value)
}

// Handler exposes the registry in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
}
