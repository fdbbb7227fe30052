package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	assembleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_assembler",
		Name:      "assemble_total",
		Help:      "Count of block assemblies by outcome.",
	}, []string{"network", "status"})

	assembleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_assembler",
		Name:      "assemble_duration_seconds",
		Help:      "Duration of assembling one block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	assembleTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_assembler",
		Name:      "block_transactions",
		Help:      "Number of transactions in assembled blocks.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	totalDifficultyMissingTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_assembler",
		Name:      "total_difficulty_missing_total",
		Help:      "Count of blocks served without a total difficulty.",
	}, []string{"network"})
)

// BlockAssembler records block assembly outcomes.
type BlockAssembler struct {
	network string
}

// NewBlockAssembler constructs a metrics collector for the block assembler.
func NewBlockAssembler(network string) *BlockAssembler {
	return &BlockAssembler{network: labelOrUnknown(network)}
}

// ObserveAssemble records one Assemble call. Absent blocks are counted as
// not_found, separately from failures.
func (m BlockAssembler) ObserveAssemble(err error, found bool, transactions int, started time.Time) {
	status := "found"
	switch {
	case err != nil:
		status = "error"
	case !found:
		status = "not_found"
	}

	assembleTotal.WithLabelValues(m.network, status).Inc()
	assembleDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	if found {
		assembleTransactions.WithLabelValues(m.network).Observe(float64(transactions))
	}
}

// ObserveTotalDifficultyMissing counts a block served without total difficulty.
func (m BlockAssembler) ObserveTotalDifficultyMissing() {
	totalDifficultyMissingTotal.WithLabelValues(m.network).Inc()
}
