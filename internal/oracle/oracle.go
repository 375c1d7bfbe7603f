// Package oracle answers balance queries for one sweep job, caching every successful lookup.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/walletsweep/internal/chain"
	"github.com/goodnatureofminers/walletsweep/internal/model"
	"go.uber.org/zap"
)

var errUnknownChain = errors.New("unknown chain")

type cacheKey struct {
	chain   model.Chain
	address string
}

// Oracle is a job-scoped balance cache in front of the chain backends.
// Entries are written once and never replaced; failed lookups are not cached.
type Oracle struct {
	sources map[model.Chain]BalanceSource
	metrics Metrics
	logger  *zap.Logger

	mu    sync.Mutex
	cache map[cacheKey]model.BalanceRecord
}

// New builds an Oracle over the given balance sources.
func New(sources []BalanceSource, metrics Metrics, logger *zap.Logger) *Oracle {
	if logger == nil {
		logger = zap.NewNop()
	}
	bySource := make(map[model.Chain]BalanceSource, len(sources))
	for _, s := range sources {
		bySource[s.ID()] = s
	}
	return &Oracle{
		sources: bySource,
		metrics: metrics,
		logger:  logger.Named("oracle"),
		cache:   make(map[cacheKey]model.BalanceRecord),
	}
}

// GetBalance returns the balance of address on id. The second result is false
// when the balance could not be determined; the cause is logged, never returned.
func (o *Oracle) GetBalance(ctx context.Context, id model.Chain, address string) (model.BalanceRecord, bool) {
	key := cacheKey{chain: id, address: address}

	o.mu.Lock()
	rec, ok := o.cache[key]
	o.mu.Unlock()
	if ok {
		o.observe(id, true, nil)
		return rec, true
	}

	rec, err := o.fetch(ctx, id, address)
	o.observe(id, false, err)
	if err != nil {
		logger := o.logger.With(zap.String("chain", id.String()), zap.String("address", address))
		switch {
		case errors.Is(err, chain.ErrDisabled):
			logger.Warn("balance checks disabled, credentials not configured")
		case errors.Is(err, context.Canceled):
			logger.Debug("balance lookup canceled")
		default:
			logger.Error("balance lookup failed", zap.Error(err))
		}
		return model.BalanceRecord{}, false
	}

	o.mu.Lock()
	if cached, exists := o.cache[key]; exists {
		rec = cached
	} else {
		o.cache[key] = rec
	}
	o.mu.Unlock()
	return rec, true
}

// Len returns the number of cached balances.
func (o *Oracle) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.cache)
}

func (o *Oracle) fetch(ctx context.Context, id model.Chain, address string) (model.BalanceRecord, error) {
	src, ok := o.sources[id]
	if !ok {
		return model.BalanceRecord{}, fmt.Errorf("%w: %s", errUnknownChain, id)
	}
	return src.FetchBalance(ctx, address)
}

func (o *Oracle) observe(id model.Chain, cached bool, err error) {
	if o.metrics == nil {
		return
	}
	o.metrics.ObserveLookup(id, cached, err)
}
