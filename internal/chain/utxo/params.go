package utxo

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/walletsweep/internal/model"
)

const (
	purposeBIP44 uint32 = 44
	purposeBIP84 uint32 = 84

	// Default sweep fees in base units.
	bitcoinFee  int64 = 10_000
	litecoinFee int64 = 1_000
	dogecoinFee int64 = 1_000_000
)

// Params describes how keys, addresses and sweeps are built for one UTXO chain.
type Params struct {
	Chain    model.Chain
	Net      *chaincfg.Params
	Purpose  uint32
	CoinType uint32
	// Segwit selects native P2WPKH addresses; otherwise P2PKH is used.
	Segwit bool
	// Fee is the flat sweep fee in base units.
	Fee int64
}

// LitecoinMainNetParams are the Litecoin main network parameters.
var LitecoinMainNetParams = chaincfg.Params{
	Name:             "litecoin-mainnet",
	Net:              wire.BitcoinNet(0xdbb6c0fb),
	DefaultPort:      "9333",
	Bech32HRPSegwit:  "ltc",
	PubKeyHashAddrID: 0x30,
	ScriptHashAddrID: 0x32,
	PrivateKeyID:     0xb0,
	HDPrivateKeyID:   [4]byte{0x04, 0x88, 0xad, 0xe4},
	HDPublicKeyID:    [4]byte{0x04, 0x88, 0xb2, 0x1e},
	HDCoinType:       2,
}

// DogecoinMainNetParams are the Dogecoin main network parameters.
var DogecoinMainNetParams = chaincfg.Params{
	Name:             "dogecoin-mainnet",
	Net:              wire.BitcoinNet(0xc0c0c0c0),
	DefaultPort:      "22556",
	PubKeyHashAddrID: 0x1e,
	ScriptHashAddrID: 0x16,
	PrivateKeyID:     0x9e,
	HDPrivateKeyID:   [4]byte{0x02, 0xfa, 0xc3, 0x98},
	HDPublicKeyID:    [4]byte{0x02, 0xfa, 0xca, 0xfd},
	HDCoinType:       3,
}

func init() {
	// Registration makes btcutil recognise the ltc bech32 prefix and both networks' key ids.
	for _, p := range []*chaincfg.Params{&LitecoinMainNetParams, &DogecoinMainNetParams} {
		if err := chaincfg.Register(p); err != nil && !errors.Is(err, chaincfg.ErrDuplicateNet) {
			panic(fmt.Sprintf("register %s params: %v", p.Name, err))
		}
	}
}

// BitcoinParams returns Bitcoin mainnet params with BIP-84 native segwit derivation.
func BitcoinParams() Params {
	return Params{
		Chain:    model.Bitcoin,
		Net:      &chaincfg.MainNetParams,
		Purpose:  purposeBIP84,
		CoinType: chaincfg.MainNetParams.HDCoinType,
		Segwit:   true,
		Fee:      bitcoinFee,
	}
}

// LitecoinParams returns Litecoin mainnet params with BIP-84 native segwit derivation.
func LitecoinParams() Params {
	return Params{
		Chain:    model.Litecoin,
		Net:      &LitecoinMainNetParams,
		Purpose:  purposeBIP84,
		CoinType: LitecoinMainNetParams.HDCoinType,
		Segwit:   true,
		Fee:      litecoinFee,
	}
}

// DogecoinParams returns Dogecoin mainnet params with BIP-44 legacy derivation.
func DogecoinParams() Params {
	return Params{
		Chain:    model.Dogecoin,
		Net:      &DogecoinMainNetParams,
		Purpose:  purposeBIP44,
		CoinType: DogecoinMainNetParams.HDCoinType,
		Fee:      dogecoinFee,
	}
}

// ParamsForChain resolves the params of a UTXO chain.
func ParamsForChain(chain model.Chain) (Params, error) {
	switch chain {
	case model.Bitcoin:
		return BitcoinParams(), nil
	case model.Litecoin:
		return LitecoinParams(), nil
	case model.Dogecoin:
		return DogecoinParams(), nil
	default:
		return Params{}, fmt.Errorf("unsupported utxo chain %q", chain)
	}
}

// Path renders the derivation path of the given account index.
func (p Params) Path(index uint32) string {
	return fmt.Sprintf("m/%d'/%d'/%d'/0/0", p.Purpose, p.CoinType, index)
}
