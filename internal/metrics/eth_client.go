package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

var (
	ethClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rollupcore",
		Subsystem: "eth_client",
		Name:      "requests_total",
		Help:      "Count of L1 RPC requests.",
	}, []string{"operation", "network", "status"})
	ethClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rollupcore",
		Subsystem: "eth_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of L1 RPC requests.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "network", "status"})
)

// EthClient tracks metrics for L1 RPC calls.
type EthClient struct {
	network model.Network
}

// NewEthClient creates an EthClient metrics collector.
func NewEthClient(network model.Network) *EthClient {
	return &EthClient{network: network}
}

// Observe records duration and status of an L1 RPC call.
func (m EthClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	network := m.network
	if network == "" {
		network = "unknown"
	}

	ethClientRequestsTotal.WithLabelValues(operation, string(network), status).Inc()
	ethClientRequestDuration.WithLabelValues(operation, string(network), status).Observe(time.Since(started).Seconds())
}
