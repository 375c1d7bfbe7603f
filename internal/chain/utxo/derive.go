package utxo

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/goodnatureofminers/walletsweep/internal/mnemonic"
	"github.com/goodnatureofminers/walletsweep/internal/model"
	"github.com/goodnatureofminers/walletsweep/pkg/safe"
	"go.uber.org/zap"
)

// DeriveKeys derives count keys along m/purpose'/coin'/i'/0/0.
func (c *Chain) DeriveKeys(phrase string, count int) []model.DerivedKey {
	seed, err := mnemonic.Seed(phrase)
	if err != nil {
		c.logger.Warn("skip key derivation", zap.Error(err))
		return nil
	}
	master, err := hdkeychain.NewMaster(seed, c.params.Net)
	if err != nil {
		c.logger.Error("create master key", zap.Error(err))
		return nil
	}

	keys := make([]model.DerivedKey, 0, max(count, 0))
	for i := 0; i < count; i++ {
		index, err := safe.Uint32(i)
		if err != nil {
			c.logger.Error("derivation index", zap.Int("index", i), zap.Error(err))
			break
		}
		key, err := c.deriveKey(master, index)
		if err != nil {
			c.logger.Warn("derive key", zap.Uint32("index", index), zap.Error(err))
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

func (c *Chain) deriveKey(master *hdkeychain.ExtendedKey, index uint32) (model.DerivedKey, error) {
	path := []uint32{
		hdkeychain.HardenedKeyStart + c.params.Purpose,
		hdkeychain.HardenedKeyStart + c.params.CoinType,
		hdkeychain.HardenedKeyStart + index,
		0,
		0,
	}
	key := master
	for _, child := range path {
		next, err := key.Derive(child)
		if err != nil {
			return model.DerivedKey{}, fmt.Errorf("derive child %d: %w", child, err)
		}
		key = next
	}

	priv, err := key.ECPrivKey()
	if err != nil {
		return model.DerivedKey{}, fmt.Errorf("extract private key: %w", err)
	}
	addr, err := c.addressForKey(priv.PubKey())
	if err != nil {
		return model.DerivedKey{}, err
	}
	wif, err := btcutil.NewWIF(priv, c.params.Net, true)
	if err != nil {
		return model.DerivedKey{}, fmt.Errorf("encode wif: %w", err)
	}

	return model.DerivedKey{
		Chain:      c.params.Chain,
		Index:      index,
		Path:       c.params.Path(index),
		PrivateKey: wif.String(),
		Address:    addr.EncodeAddress(),
	}, nil
}

func (c *Chain) addressForKey(pub *btcec.PublicKey) (btcutil.Address, error) {
	hash := btcutil.Hash160(pub.SerializeCompressed())
	if c.params.Segwit {
		addr, err := btcutil.NewAddressWitnessPubKeyHash(hash, c.params.Net)
		if err != nil {
			return nil, fmt.Errorf("build p2wpkh address: %w", err)
		}
		return addr, nil
	}
	addr, err := btcutil.NewAddressPubKeyHash(hash, c.params.Net)
	if err != nil {
		return nil, fmt.Errorf("build p2pkh address: %w", err)
	}
	return addr, nil
}
