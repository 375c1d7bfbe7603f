// Package ethclient wraps go-ethereum's client with metrics instrumentation.
package ethclient

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type ObservedClient struct {
	client     *ethclient.Client
	rpcMetrics RPCMetrics
}

func NewObservedClient(client *ethclient.Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// Dial connects to rawURL over the given rpc.ClientOption set (e.g. a shared http.Client).
func Dial(ctx context.Context, rawURL string, rpcMetrics RPCMetrics, opts ...rpc.ClientOption) (*ObservedClient, error) {
	c, err := rpc.DialOptions(ctx, rawURL, opts...)
	if err != nil {
		return nil, err
	}
	return NewObservedClient(ethclient.NewClient(c), rpcMetrics), nil
}

func (r *ObservedClient) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (balance *big.Int, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("balance_at", err, started)
	}()
	return r.client.BalanceAt(ctx, account, blockNumber)
}

func (r *ObservedClient) SuggestGasPrice(ctx context.Context) (price *big.Int, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("suggest_gas_price", err, started)
	}()
	return r.client.SuggestGasPrice(ctx)
}

func (r *ObservedClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (gas uint64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("estimate_gas", err, started)
	}()
	return r.client.EstimateGas(ctx, msg)
}

func (r *ObservedClient) PendingNonceAt(ctx context.Context, account common.Address) (nonce uint64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("pending_nonce_at", err, started)
	}()
	return r.client.PendingNonceAt(ctx, account)
}

func (r *ObservedClient) SendTransaction(ctx context.Context, tx *types.Transaction) (err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("send_transaction", err, started)
	}()
	return r.client.SendTransaction(ctx, tx)
}

func (r *ObservedClient) Close() {
	r.client.Close()
}
