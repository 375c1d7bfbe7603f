// Package account implements key derivation, balance lookup and sweeping for Ethereum.
package account

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goodnatureofminers/walletsweep/internal/chain"
	"github.com/goodnatureofminers/walletsweep/internal/model"
	"go.uber.org/zap"
)

// MainnetChainID is the EIP-155 chain id of Ethereum mainnet.
var MainnetChainID = big.NewInt(1)

// Chain is Ethereum backed by a JSON-RPC node.
type Chain struct {
	client  Client
	retrier Retrier
	chainID *big.Int
	logger  *zap.Logger
}

var _ chain.Chain = (*Chain)(nil)

// Option customizes a Chain.
type Option func(*Chain)

// WithChainID overrides the EIP-155 chain id used for signing.
func WithChainID(id *big.Int) Option {
	return func(c *Chain) {
		c.chainID = new(big.Int).Set(id)
	}
}

// New constructs the Ethereum chain. A nil client disables balance lookups and sweeps.
func New(client Client, retrier Retrier, logger *zap.Logger, opts ...Option) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Chain{
		client:  client,
		retrier: retrier,
		chainID: MainnetChainID,
		logger:  logger.With(zap.String("chain", model.Ethereum.String())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Chain) ID() model.Chain {
	return model.Ethereum
}

func (c *Chain) enabled() bool {
	return c.client != nil && c.retrier != nil
}

func (c *Chain) FetchBalance(ctx context.Context, address string) (model.BalanceRecord, error) {
	if !c.enabled() {
		return model.BalanceRecord{}, chain.ErrDisabled
	}
	if !common.IsHexAddress(address) {
		return model.BalanceRecord{}, fmt.Errorf("invalid ethereum address %q", address)
	}
	balance, err := c.balanceAt(ctx, common.HexToAddress(address))
	if err != nil {
		return model.BalanceRecord{}, fmt.Errorf("fetch ethereum balance: %w", err)
	}
	return model.NewBalanceRecord(model.Ethereum, address, balance), nil
}

func (c *Chain) balanceAt(ctx context.Context, addr common.Address) (*big.Int, error) {
	var balance *big.Int
	err := c.read(ctx, "balance", func(ctx context.Context) (err error) {
		balance, err = c.client.BalanceAt(ctx, addr, nil)
		return err
	})
	return balance, err
}

// read retries fn; errors reported by the node itself are not retried.
func (c *Chain) read(ctx context.Context, operation string, fn func(context.Context) error) error {
	return c.retrier.Retry(ctx, operation, model.Ethereum, func(ctx context.Context) error {
		err := fn(ctx)
		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) {
			return backoff.Permanent(err)
		}
		return err
	})
}
