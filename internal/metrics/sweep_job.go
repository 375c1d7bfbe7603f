package metrics

import (
	"time"

	"github.com/goodnatureofminers/walletsweep/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	balanceLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletsweep",
		Subsystem: "oracle",
		Name:      "balance_lookups_total",
		Help:      "Balance lookups by source (cache or remote) and status.",
	}, []string{"chain", "source", "status"})
	sweepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletsweep",
		Subsystem: "sweep",
		Name:      "attempts_total",
		Help:      "Sweep attempts by outcome.",
	}, []string{"chain", "outcome"})
	fundedAddressesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletsweep",
		Subsystem: "sweep",
		Name:      "funded_addresses_total",
		Help:      "Addresses found with a positive balance.",
	}, []string{"chain"})
	jobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletsweep",
		Subsystem: "job",
		Name:      "finished_total",
		Help:      "Jobs by terminal state.",
	}, []string{"state"})
	jobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletsweep",
		Subsystem: "job",
		Name:      "duration_seconds",
		Help:      "Duration of sweep jobs.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"state"})
)

// Oracle tracks balance lookups.
type Oracle struct{}

// NewOracle constructs a metrics collector for balance lookups.
func NewOracle() *Oracle {
	return &Oracle{}
}

// ObserveLookup records a lookup served from cache or from the remote API.
func (Oracle) ObserveLookup(chain model.Chain, cached bool, err error) {
	source := "remote"
	if cached {
		source = "cache"
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	balanceLookupsTotal.WithLabelValues(string(chain), source, status).Inc()
}

// Worker tracks sweep job progress.
type Worker struct{}

// NewWorker constructs a metrics collector for the sweep worker.
func NewWorker() *Worker {
	return &Worker{}
}

// ObserveFunded records an address found with funds.
func (Worker) ObserveFunded(chain model.Chain) {
	fundedAddressesTotal.WithLabelValues(string(chain)).Inc()
}

// ObserveSweep records a sweep outcome.
func (Worker) ObserveSweep(chain model.Chain, status model.SweepStatus) {
	sweepsTotal.WithLabelValues(string(chain), status.String()).Inc()
}

// ObserveJob records a finished job.
func (Worker) ObserveJob(state model.JobState, started time.Time) {
	jobsTotal.WithLabelValues(string(state)).Inc()
	jobDuration.WithLabelValues(string(state)).Observe(time.Since(started).Seconds())
}
