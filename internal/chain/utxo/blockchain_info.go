package utxo

import (
	"context"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"github.com/goodnatureofminers/walletsweep/internal/explorer"
	"github.com/goodnatureofminers/walletsweep/internal/model"
	"github.com/goodnatureofminers/walletsweep/pkg/safe"
)

// DefaultBlockchainInfoURL is the public blockchain.info API root.
const DefaultBlockchainInfoURL = "https://blockchain.info"

// BlockchainInfo reads and broadcasts Bitcoin data through blockchain.info.
type BlockchainInfo struct {
	client  *explorer.Client
	baseURL string
}

// NewBlockchainInfo constructs the Bitcoin explorer backend.
func NewBlockchainInfo(client *explorer.Client, baseURL string) *BlockchainInfo {
	if baseURL == "" {
		baseURL = DefaultBlockchainInfoURL
	}
	return &BlockchainInfo{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type blockchainInfoBalance struct {
	FinalBalance uint64 `json:"final_balance"`
}

type blockchainInfoUnspent struct {
	UnspentOutputs []struct {
		TxHashBigEndian string `json:"tx_hash_big_endian"`
		TxOutputN       uint64 `json:"tx_output_n"`
		Value           uint64 `json:"value"`
	} `json:"unspent_outputs"`
}

func (b *BlockchainInfo) Balance(ctx context.Context, address string) (*big.Int, error) {
	var resp map[string]blockchainInfoBalance
	endpoint := b.baseURL + "/balance?active=" + url.QueryEscape(address)
	if err := b.client.GetJSON(ctx, "balance", model.Bitcoin, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	entry, ok := resp[address]
	if !ok {
		return nil, fmt.Errorf("%w: address %s missing from balance response", explorer.ErrAPI, address)
	}
	return new(big.Int).SetUint64(entry.FinalBalance), nil
}

func (b *BlockchainInfo) Unspent(ctx context.Context, address string) ([]Unspent, error) {
	var resp blockchainInfoUnspent
	endpoint := b.baseURL + "/unspent?active=" + url.QueryEscape(address)
	if err := b.client.GetJSON(ctx, "unspent", model.Bitcoin, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	out := make([]Unspent, 0, len(resp.UnspentOutputs))
	for _, o := range resp.UnspentOutputs {
		u, err := newUnspent(o.TxHashBigEndian, o.TxOutputN, o.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (b *BlockchainInfo) Broadcast(ctx context.Context, rawTx, localTxID string) (string, error) {
	form := url.Values{"tx": {rawTx}}
	body, err := b.client.Post(ctx, "broadcast", model.Bitcoin, b.baseURL+"/pushtx",
		"application/x-www-form-urlencoded", []byte(form.Encode()))
	if err != nil {
		return "", err
	}
	// pushtx answers with plain text, usually "Transaction Submitted".
	if text := strings.TrimSpace(string(body)); isTxID(text) {
		return text, nil
	}
	return localTxID, nil
}

func newUnspent(txID string, vout, value uint64) (Unspent, error) {
	n, err := safe.Uint32(vout)
	if err != nil {
		return Unspent{}, fmt.Errorf("unspent %s output index: %w", txID, err)
	}
	v, err := safe.Int64(value)
	if err != nil {
		return Unspent{}, fmt.Errorf("unspent %s:%d value: %w", txID, n, err)
	}
	return Unspent{TxID: txID, Vout: n, Value: v}, nil
}

func isTxID(s string) bool {
	if len(s) != 64 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
