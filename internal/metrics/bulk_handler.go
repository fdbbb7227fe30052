package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bulkRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "bulk_rpc",
		Name:      "requests_total",
		Help:      "Count of bulk namespace RPC requests.",
	}, []string{"method", "status"})
	bulkRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "bulk_rpc",
		Name:      "request_duration_seconds",
		Help:      "Duration of bulk namespace RPC requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status"})
)

// BulkHandler tracks metrics for the bulk RPC namespace.
type BulkHandler struct{}

// NewBulkHandler constructs a BulkHandler metrics collector.
func NewBulkHandler() *BulkHandler {
	return &BulkHandler{}
}

// ObserveRequest records a single RPC method call.
func (m BulkHandler) ObserveRequest(method string, err error, started time.Time) {
	status := statusLabel(err)

	bulkRequestsTotal.WithLabelValues(method, status).Inc()
	bulkRequestDuration.WithLabelValues(method, status).Observe(time.Since(started).Seconds())
}
