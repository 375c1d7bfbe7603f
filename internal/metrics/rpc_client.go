// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/walletsweep/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	remoteRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletsweep",
		Subsystem: "remote",
		Name:      "operations_total",
		Help:      "Count of explorer and node RPC operations.",
	}, []string{"operation", "chain", "status"})
	remoteRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletsweep",
		Subsystem: "remote",
		Name:      "operation_duration_seconds",
		Help:      "Duration of explorer and node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "chain", "status"})
)

// ExplorerClient tracks metrics for HTTP calls to chain explorer APIs.
type ExplorerClient struct{}

// NewExplorerClient constructs a metrics collector for explorer calls.
func NewExplorerClient() *ExplorerClient {
	return &ExplorerClient{}
}

// Observe records a single explorer call outcome and duration.
func (ExplorerClient) Observe(operation string, chain model.Chain, err error, started time.Time) {
	observeRemote(operation, chain, err, started)
}

// RPCClient tracks metrics for JSON-RPC calls to an account-model chain node.
type RPCClient struct {
	chain model.Chain
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(chain model.Chain) *RPCClient {
	return &RPCClient{chain: chain}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	observeRemote(operation, m.chain, err, started)
}

func observeRemote(operation string, chain model.Chain, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	label := string(chain)
	if label == "" {
		label = "unknown"
	}

	remoteRequestsTotal.WithLabelValues(operation, label, status).Inc()
	remoteRequestDuration.WithLabelValues(operation, label, status).Observe(time.Since(started).Seconds())
}
