// Package chain defines the capability set every supported blockchain implements.
package chain

import (
	"context"
	"errors"
	"sort"

	"github.com/goodnatureofminers/walletsweep/internal/model"
)

// ErrDisabled is returned when a chain has no usable backend, e.g. missing credentials.
var ErrDisabled = errors.New("chain disabled")

// Chain derives keys, validates addresses, reads balances and sweeps funds for one blockchain.
type Chain interface {
	ID() model.Chain
	// DeriveKeys never fails; derivation problems are logged and yield fewer keys.
	DeriveKeys(mnemonic string, count int) []model.DerivedKey
	ValidateAddress(address string) bool
	FetchBalance(ctx context.Context, address string) (model.BalanceRecord, error)
	Sweep(ctx context.Context, key model.DerivedKey, destination string) model.SweepOutcome
}

// Ordered returns chains sorted by model.Chains order, dropping duplicates and unknown chains.
func Ordered(chains []Chain) []Chain {
	seen := make(map[model.Chain]struct{}, len(chains))
	out := make([]Chain, 0, len(chains))
	for _, c := range chains {
		if c == nil || c.ID().Order() < 0 {
			continue
		}
		if _, ok := seen[c.ID()]; ok {
			continue
		}
		seen[c.ID()] = struct{}{}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID().Order() < out[j].ID().Order()
	})
	return out
}
