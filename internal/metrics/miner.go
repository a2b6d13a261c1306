// Package metrics exposes prometheus instrumentation for the ledger node.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	minerAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agriledger",
		Subsystem: "miner",
		Name:      "attempts_total",
		Help:      "Count of mining attempts.",
	}, []string{"status"})

	minerSearchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "agriledger",
		Subsystem: "miner",
		Name:      "search_duration_seconds",
		Help:      "Duration of the nonce search per attempt.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	minerNonceAttempts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "agriledger",
		Subsystem: "miner",
		Name:      "nonce_attempts",
		Help:      "Nonces tried per mining attempt.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 16),
	}, []string{"status"})
)

// Miner tracks metrics for proof-of-work attempts.
type Miner struct{}

// NewMiner constructs a Miner metrics recorder.
func NewMiner() *Miner {
	return &Miner{}
}

// ObserveMine records one mining attempt outcome.
func (m Miner) ObserveMine(err error, attempts uint64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	minerAttemptsTotal.WithLabelValues(status).Inc()
	minerSearchDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	minerNonceAttempts.WithLabelValues(status).Observe(float64(attempts))
}
