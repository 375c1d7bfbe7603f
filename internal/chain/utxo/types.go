package utxo

import (
	"context"
	"math/big"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// API is the explorer backend of one UTXO chain.
	API interface {
		Balance(ctx context.Context, address string) (*big.Int, error)
		Unspent(ctx context.Context, address string) ([]Unspent, error)
		// Broadcast publishes a signed raw transaction and returns its id.
		// localTxID is the locally computed id, used when the backend does not echo one.
		Broadcast(ctx context.Context, rawTx, localTxID string) (string, error)
	}
)

// Unspent is a spendable output normalized across explorers.
type Unspent struct {
	TxID  string
	Vout  uint32
	Value int64
}
