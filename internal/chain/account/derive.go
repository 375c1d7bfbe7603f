package account

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/goodnatureofminers/walletsweep/internal/mnemonic"
	"github.com/goodnatureofminers/walletsweep/internal/model"
	"github.com/goodnatureofminers/walletsweep/pkg/safe"
	"github.com/tyler-smith/go-bip32"
	"go.uber.org/zap"
)

const (
	purpose  uint32 = 44
	coinType uint32 = 60
)

// Path renders the derivation path of the given account index.
func Path(index uint32) string {
	return fmt.Sprintf("m/%d'/%d'/%d'/0/0", purpose, coinType, index)
}

// DeriveKeys derives count keys along m/44'/60'/i'/0/0.
func (c *Chain) DeriveKeys(phrase string, count int) []model.DerivedKey {
	seed, err := mnemonic.Seed(phrase)
	if err != nil {
		c.logger.Warn("skip key derivation", zap.Error(err))
		return nil
	}
	master, err := bip32.NewMasterKey(seed)
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
		key, err := deriveKey(master, index)
		if err != nil {
			c.logger.Warn("derive key", zap.Uint32("index", index), zap.Error(err))
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

func deriveKey(master *bip32.Key, index uint32) (model.DerivedKey, error) {
	path := []uint32{
		bip32.FirstHardenedChild + purpose,
		bip32.FirstHardenedChild + coinType,
		bip32.FirstHardenedChild + index,
		0,
		0,
	}
	key := master
	for _, child := range path {
		next, err := key.NewChildKey(child)
		if err != nil {
			return model.DerivedKey{}, fmt.Errorf("derive child %d: %w", child, err)
		}
		key = next
	}

	priv, err := crypto.ToECDSA(common.LeftPadBytes(key.Key, 32))
	if err != nil {
		return model.DerivedKey{}, fmt.Errorf("decode private key: %w", err)
	}
	return model.DerivedKey{
		Chain:      model.Ethereum,
		Index:      index,
		Path:       Path(index),
		PrivateKey: hex.EncodeToString(crypto.FromECDSA(priv)),
		Address:    crypto.PubkeyToAddress(priv.PublicKey).Hex(),
	}, nil
}
