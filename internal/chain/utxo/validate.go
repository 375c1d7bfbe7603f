package utxo

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil"
)

func (c *Chain) ValidateAddress(address string) bool {
	_, ok := c.decodeAddress(address)
	return ok
}

func (c *Chain) decodeAddress(address string) (btcutil.Address, bool) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, false
	}
	addr, err := btcutil.DecodeAddress(address, c.params.Net)
	if err != nil || !addr.IsForNet(c.params.Net) {
		return nil, false
	}
	return addr, true
}
