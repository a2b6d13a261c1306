package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeSubmitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agriledger",
		Subsystem: "node",
		Name:      "submit_total",
		Help:      "Count of transaction submissions.",
	}, []string{"status"})

	nodeMiningCycleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agriledger",
		Subsystem: "node",
		Name:      "mining_cycle_total",
		Help:      "Count of mining cycles run by the scheduler.",
	}, []string{"status"})

	nodeMiningCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "agriledger",
		Subsystem: "node",
		Name:      "mining_cycle_duration_seconds",
		Help:      "Duration of a full mining cycle including the append.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	nodeChainHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "agriledger",
		Subsystem: "node",
		Name:      "chain_height",
		Help:      "Number of blocks in the chain including genesis.",
	})

	nodePoolPending = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "agriledger",
		Subsystem: "node",
		Name:      "pool_pending_transactions",
		Help:      "Transactions currently staged in the pool.",
	})
)

// Node tracks metrics for the node facade.
type Node struct{}

// NewNode constructs a Node metrics recorder.
func NewNode() *Node {
	return &Node{}
}

// ObserveSubmit records a transaction submission outcome.
func (m Node) ObserveSubmit(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	nodeSubmitTotal.WithLabelValues(status).Inc()
}

// ObserveMiningCycle records a mining cycle outcome and duration.
func (m Node) ObserveMiningCycle(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	nodeMiningCycleTotal.WithLabelValues(status).Inc()
	nodeMiningCycleDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// SetChainHeight publishes the current chain height.
func (m Node) SetChainHeight(height uint64) {
	nodeChainHeight.Set(float64(height))
}

// SetPoolSize publishes the pending transaction count.
func (m Node) SetPoolSize(size int) {
	nodePoolPending.Set(float64(size))
}
