package model

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// DerivedKey is one HD-derived key pair for a chain.
// PrivateKey holds the chain's export form (hex or WIF) and must never be persisted.
type DerivedKey struct {
	Chain      Chain
	Index      uint32
	Path       string
	PrivateKey string
	Address    string
}

// BalanceRecord is the spendable balance of an address in base units.
type BalanceRecord struct {
	Chain   Chain
	Address string
	Amount  *big.Int
	Unit    string
}

// NewBalanceRecord builds a record with the chain's display unit.
func NewBalanceRecord(chain Chain, address string, amount *big.Int) BalanceRecord {
	if amount == nil {
		amount = new(big.Int)
	}
	return BalanceRecord{
		Chain:   chain,
		Address: address,
		Amount:  new(big.Int).Set(amount),
		Unit:    chain.Unit(),
	}
}

// Display converts the base-unit amount into display units.
func (b BalanceRecord) Display() decimal.Decimal {
	if b.Amount == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(b.Amount, -b.Chain.Decimals())
}

// Positive reports whether the record holds a non-zero balance.
func (b BalanceRecord) Positive() bool {
	return b.Amount != nil && b.Amount.Sign() > 0
}

// ToBaseUnits converts a display amount into base units, truncating sub-unit precision.
func ToBaseUnits(chain Chain, amount decimal.Decimal) *big.Int {
	return amount.Shift(chain.Decimals()).Truncate(0).BigInt()
}
