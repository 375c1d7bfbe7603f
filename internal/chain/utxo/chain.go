// Package utxo implements key derivation, balance lookup and sweeping for
// Bitcoin-family chains that hold value in unspent outputs.
package utxo

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/walletsweep/internal/chain"
	"github.com/goodnatureofminers/walletsweep/internal/model"
	"go.uber.org/zap"
)

// Chain is a UTXO chain parameterized by Params and backed by an explorer API.
type Chain struct {
	params Params
	api    API
	logger *zap.Logger
}

var _ chain.Chain = (*Chain)(nil)

// New constructs a UTXO chain. A nil api disables balance lookups and sweeps.
func New(params Params, api API, logger *zap.Logger) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chain{
		params: params,
		api:    api,
		logger: logger.With(zap.String("chain", params.Chain.String())),
	}
}

func (c *Chain) ID() model.Chain {
	return c.params.Chain
}

// Params returns the chain parameters.
func (c *Chain) Params() Params {
	return c.params
}

func (c *Chain) FetchBalance(ctx context.Context, address string) (model.BalanceRecord, error) {
	if c.api == nil {
		return model.BalanceRecord{}, chain.ErrDisabled
	}
	amount, err := c.api.Balance(ctx, address)
	if err != nil {
		return model.BalanceRecord{}, fmt.Errorf("fetch %s balance: %w", c.params.Chain, err)
	}
	return model.NewBalanceRecord(c.params.Chain, address, amount), nil
}
