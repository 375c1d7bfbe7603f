package account

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/walletsweep/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Client is the subset of the Ethereum JSON-RPC API used for balance checks and sweeps.
	Client interface {
		BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
		SuggestGasPrice(ctx context.Context) (*big.Int, error)
		EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
		PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
		SendTransaction(ctx context.Context, tx *types.Transaction) error
	}
	// Retrier runs read calls with bounded retries and a per-attempt timeout.
	Retrier interface {
		Retry(ctx context.Context, operation string, chain model.Chain, fn func(context.Context) error) error
	}
)
