package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

var (
	verifierFetchProofTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rollupcore",
		Subsystem: "verifier",
		Name:      "fetch_proof_total",
		Help:      "Count of attempts to fetch a block proof.",
	}, []string{"network", "status"})

	verifierFetchProofDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rollupcore",
		Subsystem: "verifier",
		Name:      "fetch_proof_duration_seconds",
		Help:      "Duration of fetching a block proof.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	verifierVerifyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rollupcore",
		Subsystem: "verifier",
		Name:      "verify_total",
		Help:      "Count of block verification attempts.",
	}, []string{"network", "status"})

	verifierVerifyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rollupcore",
		Subsystem: "verifier",
		Name:      "verify_duration_seconds",
		Help:      "Duration of verifying a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// Verifier tracks metrics for the block verifier pipeline.
type Verifier struct {
	network model.Network
}

// NewVerifier constructs a Verifier with sane defaults.
func NewVerifier(network model.Network) *Verifier {
	if network == "" {
		network = "unknown"
	}
	return &Verifier{network: network}
}

// ObserveFetchProof records a proof fetch outcome and duration.
func (m Verifier) ObserveFetchProof(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	verifierFetchProofTotal.WithLabelValues(string(m.network), status).Inc()
	verifierFetchProofDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveVerify records a block verification attempt.
func (m Verifier) ObserveVerify(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	verifierVerifyTotal.WithLabelValues(string(m.network), status).Inc()
	verifierVerifyDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}
