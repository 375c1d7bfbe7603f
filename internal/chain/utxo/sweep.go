package utxo

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/walletsweep/internal/chain"
	"github.com/goodnatureofminers/walletsweep/internal/model"
	"go.uber.org/zap"
)

// Sweep spends every unspent output of key to destination in one transaction without change.
func (c *Chain) Sweep(ctx context.Context, key model.DerivedKey, destination string) model.SweepOutcome {
	logger := c.logger.With(zap.String("address", key.Address))

	dest, ok := c.decodeAddress(destination)
	if !ok {
		logger.Error("invalid sweep destination", zap.String("destination", destination))
		return model.NotSent(model.SweepInvalidDestination, fmt.Errorf("invalid %s destination %q", c.params.Chain, destination))
	}
	if c.api == nil {
		return model.NotSent(model.SweepUnavailable, chain.ErrDisabled)
	}

	wif, err := btcutil.DecodeWIF(key.PrivateKey)
	if err != nil {
		logger.Error("decode private key", zap.Error(err))
		return model.NotSent(model.SweepFailed, fmt.Errorf("decode private key: %w", err))
	}
	if !wif.IsForNet(c.params.Net) {
		return model.NotSent(model.SweepFailed, errors.New("private key belongs to another network"))
	}

	unspents, err := c.api.Unspent(ctx, key.Address)
	if err != nil {
		logger.Error("fetch unspent outputs", zap.Error(err))
		return model.NotSent(model.SweepFailed, fmt.Errorf("fetch unspent outputs: %w", err))
	}
	var total int64
	for _, u := range unspents {
		total += u.Value
	}
	if len(unspents) == 0 || total <= 0 {
		logger.Warn("no unspent outputs to sweep")
		return model.NotSent(model.SweepNoFunds, nil)
	}

	amount := total - c.params.Fee
	if amount <= 0 {
		logger.Warn("balance does not cover fee", zap.Int64("total", total), zap.Int64("fee", c.params.Fee))
		return model.NotSent(model.SweepInsufficientForFee, nil)
	}

	tx, err := c.buildSweepTx(unspents, dest, amount, wif)
	if err != nil {
		logger.Error("build sweep transaction", zap.Error(err))
		return model.NotSent(model.SweepFailed, err)
	}
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return model.NotSent(model.SweepFailed, fmt.Errorf("serialize transaction: %w", err))
	}

	txID, err := c.api.Broadcast(ctx, hex.EncodeToString(buf.Bytes()), tx.TxHash().String())
	if err != nil {
		logger.Error("broadcast sweep transaction", zap.Error(err))
		return model.NotSent(model.SweepFailed, fmt.Errorf("broadcast: %w", err))
	}

	logger.Info("sweep broadcast",
		zap.String("tx_hash", txID),
		zap.Int("inputs", len(unspents)),
		zap.Int64("amount", amount),
	)
	return model.Sent(txID)
}

func (c *Chain) buildSweepTx(unspents []Unspent, dest btcutil.Address, amount int64, wif *btcutil.WIF) (*wire.MsgTx, error) {
	from, err := c.addressForKey(wif.PrivKey.PubKey())
	if err != nil {
		return nil, err
	}
	prevScript, err := txscript.PayToAddrScript(from)
	if err != nil {
		return nil, fmt.Errorf("source script: %w", err)
	}
	destScript, err := txscript.PayToAddrScript(dest)
	if err != nil {
		return nil, fmt.Errorf("destination script: %w", err)
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	prevOuts := txscript.NewMultiPrevOutFetcher(nil)
	for _, u := range unspents {
		hash, err := chainhash.NewHashFromStr(u.TxID)
		if err != nil {
			return nil, fmt.Errorf("unspent txid %q: %w", u.TxID, err)
		}
		outPoint := wire.NewOutPoint(hash, u.Vout)
		tx.AddTxIn(wire.NewTxIn(outPoint, nil, nil))
		prevOuts.AddPrevOut(*outPoint, wire.NewTxOut(u.Value, prevScript))
	}
	tx.AddTxOut(wire.NewTxOut(amount, destScript))

	sigHashes := txscript.NewTxSigHashes(tx, prevOuts)
	for i, u := range unspents {
		if c.params.Segwit {
			witness, err := txscript.WitnessSignature(tx, sigHashes, i, u.Value, prevScript, txscript.SigHashAll, wif.PrivKey, true)
			if err != nil {
				return nil, fmt.Errorf("sign input %d: %w", i, err)
			}
			tx.TxIn[i].Witness = witness
			continue
		}
		sigScript, err := txscript.SignatureScript(tx, i, prevScript, txscript.SigHashAll, wif.PrivKey, true)
		if err != nil {
			return nil, fmt.Errorf("sign input %d: %w", i, err)
		}
		tx.TxIn[i].SignatureScript = sigScript
	}
	return tx, nil
}
