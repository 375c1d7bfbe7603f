package account

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/goodnatureofminers/walletsweep/internal/chain"
	"github.com/goodnatureofminers/walletsweep/internal/model"
	"go.uber.org/zap"
)

// Sweep transfers the whole balance minus the network fee to destination in a legacy transaction.
func (c *Chain) Sweep(ctx context.Context, key model.DerivedKey, destination string) model.SweepOutcome {
	logger := c.logger.With(zap.String("address", key.Address))

	if !c.ValidateAddress(destination) {
		logger.Error("invalid sweep destination", zap.String("destination", destination))
		return model.NotSent(model.SweepInvalidDestination, fmt.Errorf("invalid ethereum destination %q", destination))
	}
	if !c.enabled() {
		return model.NotSent(model.SweepUnavailable, chain.ErrDisabled)
	}

	priv, err := crypto.HexToECDSA(strings.TrimPrefix(key.PrivateKey, "0x"))
	if err != nil {
		logger.Error("decode private key", zap.Error(err))
		return model.NotSent(model.SweepFailed, fmt.Errorf("decode private key: %w", err))
	}
	from := crypto.PubkeyToAddress(priv.PublicKey)
	to := common.HexToAddress(strings.TrimSpace(destination))

	balance, err := c.balanceAt(ctx, from)
	if err != nil {
		logger.Error("fetch balance", zap.Error(err))
		return model.NotSent(model.SweepFailed, fmt.Errorf("fetch balance: %w", err))
	}
	if balance.Sign() <= 0 {
		logger.Warn("no balance to sweep")
		return model.NotSent(model.SweepNoFunds, nil)
	}

	var gasPrice *big.Int
	if err := c.read(ctx, "gas_price", func(ctx context.Context) (err error) {
		gasPrice, err = c.client.SuggestGasPrice(ctx)
		return err
	}); err != nil {
		logger.Error("suggest gas price", zap.Error(err))
		return model.NotSent(model.SweepFailed, fmt.Errorf("suggest gas price: %w", err))
	}

	var gas uint64
	if err := c.read(ctx, "estimate_gas", func(ctx context.Context) (err error) {
		gas, err = c.client.EstimateGas(ctx, ethereum.CallMsg{From: from, To: &to, Value: balance})
		return err
	}); err != nil {
		logger.Error("estimate gas", zap.Error(err))
		return model.NotSent(model.SweepFailed, fmt.Errorf("estimate gas: %w", err))
	}

	fee := new(big.Int).Mul(gasPrice, new(big.Int).SetUint64(gas))
	if balance.Cmp(fee) <= 0 {
		logger.Warn("balance does not cover fee", zap.Stringer("balance", balance), zap.Stringer("fee", fee))
		return model.NotSent(model.SweepInsufficientForFee, nil)
	}
	amount := new(big.Int).Sub(balance, fee)

	var nonce uint64
	if err := c.read(ctx, "nonce", func(ctx context.Context) (err error) {
		nonce, err = c.client.PendingNonceAt(ctx, from)
		return err
	}); err != nil {
		logger.Error("fetch nonce", zap.Error(err))
		return model.NotSent(model.SweepFailed, fmt.Errorf("fetch nonce: %w", err))
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &to,
		Value:    amount,
	})
	signed, err := types.SignTx(tx, types.NewEIP155Signer(c.chainID), priv)
	if err != nil {
		logger.Error("sign transaction", zap.Error(err))
		return model.NotSent(model.SweepFailed, fmt.Errorf("sign transaction: %w", err))
	}

	if err := c.client.SendTransaction(ctx, signed); err != nil {
		logger.Error("broadcast transaction", zap.Error(err))
		return model.NotSent(model.SweepFailed, fmt.Errorf("broadcast: %w", err))
	}

	logger.Info("sweep broadcast",
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.Stringer("amount", amount),
		zap.Stringer("fee", fee),
	)
	return model.Sent(signed.Hash().Hex())
}
