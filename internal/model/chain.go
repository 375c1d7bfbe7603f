// Package model defines domain models for balance discovery and sweeping.
package model

import (
	"fmt"
	"strings"
)

// Chain identifies one supported blockchain.
type Chain string

// Kind describes the ledger model of a chain.
type Kind int

var (
	Bitcoin  Chain = "Bitcoin"
	Ethereum Chain = "Ethereum"
	Litecoin Chain = "Litecoin"
	Dogecoin Chain = "Dogecoin"
)

const (
	// AccountModel chains keep one running balance per address.
	AccountModel Kind = iota + 1
	// UTXOModel chains hold value in discrete unspent outputs.
	UTXOModel
)

// Chains returns the fixed set of supported chains in processing order.
func Chains() []Chain {
	return []Chain{Bitcoin, Ethereum, Litecoin, Dogecoin}
}

func (c Chain) String() string {
	return string(c)
}

// Unit is the display unit ticker.
func (c Chain) Unit() string {
	switch c {
	case Bitcoin:
		return "BTC"
	case Ethereum:
		return "ETH"
	case Litecoin:
		return "LTC"
	case Dogecoin:
		return "DOGE"
	default:
		return ""
	}
}

// Decimals is the number of base units per display unit as a power of ten.
func (c Chain) Decimals() int32 {
	if c == Ethereum {
		return 18
	}
	return 8
}

// Kind reports the ledger model of the chain.
func (c Chain) Kind() Kind {
	if c == Ethereum {
		return AccountModel
	}
	return UTXOModel
}

// Order returns the position of the chain in Chains, or -1.
func (c Chain) Order() int {
	for i, known := range Chains() {
		if known == c {
			return i
		}
	}
	return -1
}

// ParseChain resolves a chain by name or ticker, case-insensitively.
func ParseChain(value string) (Chain, error) {
	value = strings.TrimSpace(value)
	for _, c := range Chains() {
		if strings.EqualFold(value, string(c)) || strings.EqualFold(value, c.Unit()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unsupported chain %q", value)
}
