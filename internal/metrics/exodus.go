package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

var (
	exodusCheckTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rollupcore",
		Subsystem: "exodus",
		Name:      "check_total",
		Help:      "Count of exodus trigger checks.",
	}, []string{"network", "mode"})

	exodusCheckDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rollupcore",
		Subsystem: "exodus",
		Name:      "check_duration_seconds",
		Help:      "Duration of an exodus trigger check.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "mode"})

	exodusCancelBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rollupcore",
		Subsystem: "exodus",
		Name:      "cancel_batch_total",
		Help:      "Count of deposit cancellation batches.",
	}, []string{"network", "status"})

	exodusCancelBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rollupcore",
		Subsystem: "exodus",
		Name:      "cancel_batch_duration_seconds",
		Help:      "Duration of a deposit cancellation batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	exodusCancelBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rollupcore",
		Subsystem: "exodus",
		Name:      "cancel_batch_size",
		Help:      "Number of requests canceled per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"network"})
)

// Exodus tracks metrics for the exodus watcher.
type Exodus struct {
	network model.Network
}

// NewExodus constructs an Exodus collector with sane defaults.
func NewExodus(network model.Network) *Exodus {
	if network == "" {
		network = "unknown"
	}
	return &Exodus{network: network}
}

// ObserveCheck records an exodus trigger check and the resulting mode.
func (m Exodus) ObserveCheck(exodus bool, started time.Time) {
	mode := "normal"
	if exodus {
		mode = "exodus"
	}
	exodusCheckTotal.WithLabelValues(string(m.network), mode).Inc()
	exodusCheckDuration.WithLabelValues(string(m.network), mode).
		Observe(time.Since(started).Seconds())
}

// ObserveCancelBatch records a deposit cancellation batch.
func (m Exodus) ObserveCancelBatch(err error, processed int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	exodusCancelBatchTotal.WithLabelValues(string(m.network), status).Inc()
	exodusCancelBatchDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil && processed > 0 {
		exodusCancelBatchSize.WithLabelValues(string(m.network)).Observe(float64(processed))
	}
}
