// Package sweep runs balance discovery and sweep jobs over a fixed set of chains.
package sweep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/walletsweep/internal/mnemonic"
	"github.com/goodnatureofminers/walletsweep/internal/model"
	"github.com/goodnatureofminers/walletsweep/internal/oracle"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrJobActive is returned by Start while another job is running.
	ErrJobActive = errors.New("operation already in progress")
	// ErrInvalidParams is returned for out-of-range job parameters.
	ErrInvalidParams = errors.New("invalid job parameters")
	// ErrJobPanicked wraps a recovered panic of the job loop.
	ErrJobPanicked = errors.New("sweep job aborted")
	// ErrUnknownSweepStatus is returned for sweep outcomes the worker does not recognise.
	ErrUnknownSweepStatus = errors.New("unknown sweep status")
)

// Worker runs at most one sweep job at a time.
type Worker struct {
	chains        []Chain
	writer        ResultWriter
	metrics       WorkerMetrics
	oracleMetrics OracleMetrics
	logger        *zap.Logger
	newJobID      func() string

	mu  sync.Mutex
	job *job
}

type job struct {
	id        string
	state     model.JobState
	completed int
	total     int
	results   model.Results
	err       error

	cancel atomic.Bool
	once   sync.Once
	done   chan struct{}
}

// NewWorker constructs a Worker. Chains are processed in the given order.
func NewWorker(
	chains []Chain,
	writer ResultWriter,
	metrics WorkerMetrics,
	oracleMetrics OracleMetrics,
	logger *zap.Logger,
) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{
		chains:        chains,
		writer:        writer,
		metrics:       metrics,
		oracleMetrics: oracleMetrics,
		logger:        logger.Named("sweep"),
		newJobID:      uuid.NewString,
	}
}

// Start reserves the worker and runs the job on its own goroutine.
// Validation failures are reported through completion, not returned.
func (w *Worker) Start(ctx context.Context, params model.JobParams, progress ProgressFunc, completion CompletionFunc) (string, error) {
	if progress == nil {
		progress = func(float64, string) {}
	}
	if completion == nil {
		completion = func(model.Results, error) {}
	}

	w.mu.Lock()
	if w.job != nil && !w.job.state.Terminal() {
		w.mu.Unlock()
		return "", ErrJobActive
	}
	j := &job{
		id:      w.newJobID(),
		state:   model.JobValidating,
		results: make(model.Results),
		done:    make(chan struct{}),
	}
	w.job = j
	w.mu.Unlock()

	go w.run(ctx, j, params, progress, completion)
	return j.id, nil
}

// Cancel requests cooperative cancellation of the active job.
// It reports whether a running job was signalled.
func (w *Worker) Cancel() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.job == nil || w.job.state.Terminal() {
		return false
	}
	w.job.cancel.Store(true)
	return true
}

// Snapshot returns a copy of the current or last job; results carry no private keys.
func (w *Worker) Snapshot() model.JobSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.job == nil {
		return model.JobSnapshot{State: model.JobIdle, Results: model.Results{}}
	}
	return model.JobSnapshot{
		ID:        w.job.id,
		State:     w.job.state,
		Completed: w.job.completed,
		Total:     w.job.total,
		Results:   w.job.results.Scrubbed(),
		Err:       w.job.err,
	}
}

// Wait blocks until the current job, if any, has delivered its completion.
func (w *Worker) Wait(ctx context.Context) error {
	w.mu.Lock()
	j := w.job
	w.mu.Unlock()
	if j == nil {
		return nil
	}
	select {
	case <-j.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Worker) run(ctx context.Context, j *job, params model.JobParams, progress ProgressFunc, completion CompletionFunc) {
	started := time.Now()
	logger := w.logger.With(zap.String("job_id", j.id))
	defer close(j.done)
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %v", ErrJobPanicked, r)
			logger.Error("sweep job panicked", zap.Error(err))
			w.fail(j, err, completion, started)
		}
	}()

	phrase := mnemonic.Normalize(params.Mnemonic)
	if err := params.Validate(); err != nil {
		w.fail(j, fmt.Errorf("%w: %v", ErrInvalidParams, err), completion, started)
		return
	}
	if err := mnemonic.Validate(phrase); err != nil {
		logger.Warn("rejecting job", zap.Error(err))
		w.fail(j, err, completion, started)
		return
	}

	perms := mnemonic.Permute(phrase, params.PermutationCount)
	total := len(perms) * len(w.chains) * params.AddressCount
	w.update(j, func() {
		j.state = model.JobRunning
		j.total = total
	})
	logger.Info("sweep job running",
		zap.Int("permutations", len(perms)),
		zap.Int("chains", len(w.chains)),
		zap.Int("addresses", params.AddressCount),
		zap.Int("total", total),
	)

	sources := make([]oracle.BalanceSource, 0, len(w.chains))
	for _, c := range w.chains {
		sources = append(sources, c)
	}
	orc := oracle.New(sources, w.oracleMetrics, logger)

	cancelled, err := w.loop(ctx, j, orc, perms, params, progress, logger)
	if err != nil {
		logger.Error("sweep job failed", zap.Error(err))
		w.fail(j, err, completion, started)
		return
	}

	state := model.JobCompleted
	if cancelled {
		state = model.JobCancelled
	}

	var results model.Results
	w.update(j, func() {
		results = j.results.Clone()
	})
	w.persist(ctx, results, logger)
	w.observeJob(state, started)
	logger.Info("sweep job finished", zap.String("state", string(state)), zap.Int("funded", len(results)))
	w.finish(j, state, results, nil, completion)
}

func (w *Worker) loop(
	ctx context.Context,
	j *job,
	orc *oracle.Oracle,
	perms []string,
	params model.JobParams,
	progress ProgressFunc,
	logger *zap.Logger,
) (bool, error) {
	for permIdx, perm := range perms {
		if w.cancelled(ctx, j) {
			return true, nil
		}
		for _, c := range w.chains {
			if w.cancelled(ctx, j) {
				return true, nil
			}
			id := c.ID()
			keys := c.DeriveKeys(perm, params.AddressCount)
			if missing := params.AddressCount - len(keys); missing > 0 {
				fraction := w.advance(j, missing)
				logger.Debug("addresses not derived", zap.String("chain", id.String()), zap.Int("permutation", permIdx), zap.Int("missing", missing))
				progress(fraction, fmt.Sprintf("Skipping: %d/%d %s, %d addresses not derived", permIdx+1, len(perms), id, missing))
			}

			for _, key := range keys {
				if w.cancelled(ctx, j) {
					return true, nil
				}
				rec, ok := orc.GetBalance(ctx, id, key.Address)
				fraction := w.advance(j, 1)
				progress(fraction, fmt.Sprintf("Checking: %d/%d %s %d/%d", permIdx+1, len(perms), id, key.Index+1, params.AddressCount))
				if !ok || !rec.Positive() {
					continue
				}

				logger.Info("funded address found",
					zap.String("chain", id.String()),
					zap.String("address", key.Address),
					zap.String("balance", rec.Display().String()),
				)
				w.record(j, permIdx, key, rec)
				if w.metrics != nil {
					w.metrics.ObserveFunded(id)
				}

				destination := params.Destination(id)
				if destination == "" {
					continue
				}
				progress(fraction, fmt.Sprintf("Transferring %s from %s...", id, shorten(key.Address)))
				if err := w.applyOutcome(j, id, key.Address, c.Sweep(ctx, key, destination)); err != nil {
					return false, err
				}
			}
		}
	}
	return false, nil
}

func (w *Worker) applyOutcome(j *job, id model.Chain, address string, outcome model.SweepOutcome) error {
	transferred := false
	var reason string
	switch outcome.Status {
	case model.SweepSent:
		transferred = true
	case model.SweepInvalidDestination,
		model.SweepNoFunds,
		model.SweepInsufficientForFee,
		model.SweepUnavailable,
		model.SweepFailed:
		reason = outcome.Status.String()
		if outcome.Err != nil {
			reason = outcome.Err.Error()
		}
	default:
		return fmt.Errorf("%w %d for %s", ErrUnknownSweepStatus, outcome.Status, id)
	}

	if w.metrics != nil {
		w.metrics.ObserveSweep(id, outcome.Status)
	}
	w.update(j, func() {
		res := j.results[address]
		res.Transferred = &transferred
		res.TxHash = outcome.TxHash
		res.Error = reason
		j.results[address] = res
	})
	return nil
}

func (w *Worker) record(j *job, permIdx int, key model.DerivedKey, rec model.BalanceRecord) {
	w.update(j, func() {
		j.results[key.Address] = model.SweepResult{
			Coin:        key.Chain,
			Balance:     rec.Display(),
			Unit:        rec.Unit,
			Permutation: permIdx,
			Index:       key.Index,
			Path:        key.Path,
			PrivateKey:  key.PrivateKey,
		}
	})
}

func (w *Worker) persist(ctx context.Context, results model.Results, logger *zap.Logger) {
	if w.writer == nil {
		logger.Warn("no result writer configured, results not persisted")
		return
	}
	data, err := json.Marshal(results.Scrubbed())
	if err != nil {
		logger.Error("encode results", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	if err := w.writer.Write(ctx, data); err != nil {
		logger.Error("persist results", zap.Error(err))
		return
	}
	logger.Info("results persisted", zap.Int("entries", len(results)))
}

func (w *Worker) fail(j *job, err error, completion CompletionFunc, started time.Time) {
	w.update(j, func() {
		j.results = make(model.Results)
	})
	w.observeJob(model.JobFailed, started)
	w.finish(j, model.JobFailed, model.Results{}, err, completion)
}

// finish delivers completion once, then publishes the terminal state. The job stays
// active for Start and Snapshot until the callback has returned.
func (w *Worker) finish(j *job, state model.JobState, results model.Results, err error, completion CompletionFunc) {
	defer w.update(j, func() {
		j.state = state
		j.err = err
	})
	j.once.Do(func() {
		completion(results, err)
	})
}

func (w *Worker) advance(j *job, n int) float64 {
	var fraction float64
	w.update(j, func() {
		j.completed += n
		if j.total > 0 {
			fraction = float64(j.completed) / float64(j.total)
		}
	})
	return fraction
}

func (w *Worker) cancelled(ctx context.Context, j *job) bool {
	return j.cancel.Load() || ctx.Err() != nil
}

func (w *Worker) update(j *job, fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn()
}

func (w *Worker) observeJob(state model.JobState, started time.Time) {
	if w.metrics != nil {
		w.metrics.ObserveJob(state, started)
	}
}

func shorten(address string) string {
	if len(address) <= statusAddressLen {
		return address
	}
	return address[:statusAddressLen]
}
