package sweep

import (
	"context"
	"time"

	"github.com/goodnatureofminers/walletsweep/internal/chain"
	"github.com/goodnatureofminers/walletsweep/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Every chain.Chain can drive a job.
var _ Chain = chain.Chain(nil)

type (
	// Chain is the part of chain.Chain the worker calls; destinations are validated by Sweep.
	Chain interface {
		ID() model.Chain
		DeriveKeys(mnemonic string, count int) []model.DerivedKey
		FetchBalance(ctx context.Context, address string) (model.BalanceRecord, error)
		Sweep(ctx context.Context, key model.DerivedKey, destination string) model.SweepOutcome
	}
	// ResultWriter persists the scrubbed result set; implementations encrypt before writing.
	ResultWriter interface {
		Write(ctx context.Context, data []byte) error
	}
	WorkerMetrics interface {
		ObserveFunded(chain model.Chain)
		ObserveSweep(chain model.Chain, status model.SweepStatus)
		ObserveJob(state model.JobState, started time.Time)
	}
	OracleMetrics interface {
		ObserveLookup(chain model.Chain, cached bool, err error)
	}
)

// ProgressFunc receives the completed fraction in [0, 1] and a human-readable status.
type ProgressFunc func(fraction float64, status string)

// CompletionFunc is invoked exactly once per job. On failure results is empty and err is set.
type CompletionFunc func(results model.Results, err error)
