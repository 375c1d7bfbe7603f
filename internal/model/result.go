package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TransferStatus summarizes what happened to a funded address.
type TransferStatus string

var (
	// StatusFound marks a funded address without a configured destination.
	StatusFound TransferStatus = "found"
	// StatusTransferred marks a successful sweep.
	StatusTransferred TransferStatus = "transferred"
	// StatusTransferFailed marks a sweep that was attempted and did not broadcast.
	StatusTransferFailed TransferStatus = "transfer_failed"
)

// SweepResult is the outcome recorded for one funded address.
type SweepResult struct {
	Coin        Chain           `json:"coin"`
	Balance     decimal.Decimal `json:"balance"`
	Unit        string          `json:"unit"`
	Permutation int             `json:"permutation"`
	Index       uint32          `json:"index"`
	Path        string          `json:"path,omitempty"`
	TxHash      string          `json:"tx_hash,omitempty"`
	Transferred *bool           `json:"transferred,omitempty"`
	Error       string          `json:"error,omitempty"`

	PrivateKey string `json:"-"`
}

// Status reports the transfer status of the result.
func (r SweepResult) Status() TransferStatus {
	switch {
	case r.Transferred == nil:
		return StatusFound
	case *r.Transferred:
		return StatusTransferred
	default:
		return StatusTransferFailed
	}
}

// Scrub returns a copy without private key material.
func (r SweepResult) Scrub() SweepResult {
	r.PrivateKey = ""
	if r.Transferred != nil {
		transferred := *r.Transferred
		r.Transferred = &transferred
	}
	return r
}

// Results maps an address to its sweep result.
type Results map[string]SweepResult

// Clone returns a shallow copy of the mapping.
func (r Results) Clone() Results {
	out := make(Results, len(r))
	for addr, res := range r {
		out[addr] = res
	}
	return out
}

// Scrubbed returns a copy of the mapping with all private keys removed.
func (r Results) Scrubbed() Results {
	out := make(Results, len(r))
	for addr, res := range r {
		out[addr] = res.Scrub()
	}
	return out
}

// Addresses returns the recorded addresses sorted by chain order, then address.
func (r Results) Addresses() []string {
	addrs := make([]string, 0, len(r))
	for addr := range r {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		ci, cj := r[addrs[i]].Coin.Order(), r[addrs[j]].Coin.Order()
		if ci != cj {
			return ci < cj
		}
		return addrs[i] < addrs[j]
	})
	return addrs
}
