// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

var (
	committerFetchProposalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rollupcore",
		Subsystem: "committer",
		Name:      "fetch_proposals_total",
		Help:      "Count of attempts to fetch a window of block proposals.",
	}, []string{"network", "status"})

	committerFetchProposalsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rollupcore",
		Subsystem: "committer",
		Name:      "fetch_proposals_duration_seconds",
		Help:      "Duration of fetching a window of block proposals.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	committerCommitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rollupcore",
		Subsystem: "committer",
		Name:      "commit_total",
		Help:      "Count of block commit attempts.",
	}, []string{"network", "status"})

	committerCommitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rollupcore",
		Subsystem: "committer",
		Name:      "commit_duration_seconds",
		Help:      "Duration of committing a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	committerCommitOperations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rollupcore",
		Subsystem: "committer",
		Name:      "commit_operations",
		Help:      "Number of operations per committed block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})
)

// Committer tracks metrics for the block committer pipeline.
type Committer struct {
	network model.Network
}

// NewCommitter constructs a Committer with sane defaults.
func NewCommitter(network model.Network) *Committer {
	if network == "" {
		network = "unknown"
	}
	return &Committer{network: network}
}

// ObserveFetchProposals records a proposal fetch outcome and duration.
func (m Committer) ObserveFetchProposals(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	committerFetchProposalsTotal.WithLabelValues(string(m.network), status).Inc()
	committerFetchProposalsDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveCommit records a block commit attempt.
func (m Committer) ObserveCommit(err error, operations int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	committerCommitTotal.WithLabelValues(string(m.network), status).Inc()
	committerCommitDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		committerCommitOperations.WithLabelValues(string(m.network)).Observe(float64(operations))
	}
}
