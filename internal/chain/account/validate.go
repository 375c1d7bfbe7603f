package account

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ValidateAddress accepts 0x-prefixed 20-byte hex addresses. Mixed-case input must carry a valid EIP-55 checksum.
func (c *Chain) ValidateAddress(address string) bool {
	return ValidAddress(address)
}

// ValidAddress is the chain-independent form of ValidateAddress.
func ValidAddress(address string) bool {
	address = strings.TrimSpace(address)
	if !strings.HasPrefix(address, "0x") && !strings.HasPrefix(address, "0X") {
		return false
	}
	if !common.IsHexAddress(address) {
		return false
	}
	body := address[2:]
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return true
	}
	return common.HexToAddress(address).Hex()[2:] == body
}
