package utxo

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"github.com/goodnatureofminers/walletsweep/internal/explorer"
	"github.com/goodnatureofminers/walletsweep/internal/model"
)

// DefaultBlockCypherLitecoinURL is the BlockCypher Litecoin main network root.
const DefaultBlockCypherLitecoinURL = "https://api.blockcypher.com/v1/ltc/main"

// BlockCypher reads and broadcasts chain data through the BlockCypher API.
type BlockCypher struct {
	client  *explorer.Client
	chain   model.Chain
	baseURL string
	token   string
}

// NewBlockCypher constructs a BlockCypher backend; token may be empty for anonymous access.
func NewBlockCypher(client *explorer.Client, chain model.Chain, baseURL, token string) *BlockCypher {
	if baseURL == "" {
		baseURL = DefaultBlockCypherLitecoinURL
	}
	return &BlockCypher{
		client:  client,
		chain:   chain,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

type blockCypherBalance struct {
	Balance uint64 `json:"balance"`
}

type blockCypherAddress struct {
	TxRefs []struct {
		TxHash    string `json:"tx_hash"`
		TxOutputN uint64 `json:"tx_output_n"`
		Value     uint64 `json:"value"`
	} `json:"txrefs"`
}

type blockCypherPush struct {
	Tx struct {
		Hash string `json:"hash"`
	} `json:"tx"`
}

func (b *BlockCypher) Balance(ctx context.Context, address string) (*big.Int, error) {
	var resp blockCypherBalance
	endpoint := b.endpoint("/addrs/"+url.PathEscape(address)+"/balance", nil)
	if err := b.client.GetJSON(ctx, "balance", b.chain, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(resp.Balance), nil
}

func (b *BlockCypher) Unspent(ctx context.Context, address string) ([]Unspent, error) {
	var resp blockCypherAddress
	endpoint := b.endpoint("/addrs/"+url.PathEscape(address), url.Values{"unspentOnly": {"true"}})
	if err := b.client.GetJSON(ctx, "unspent", b.chain, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	out := make([]Unspent, 0, len(resp.TxRefs))
	for _, ref := range resp.TxRefs {
		u, err := newUnspent(ref.TxHash, ref.TxOutputN, ref.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (b *BlockCypher) Broadcast(ctx context.Context, rawTx, localTxID string) (string, error) {
	payload, err := json.Marshal(map[string]string{"tx": rawTx})
	if err != nil {
		return "", fmt.Errorf("encode push payload: %w", err)
	}
	body, err := b.client.Post(ctx, "broadcast", b.chain, b.endpoint("/txs/push", nil), "application/json", payload)
	if err != nil {
		return "", err
	}

	var resp blockCypherPush
	if err := json.Unmarshal(body, &resp); err != nil || resp.Tx.Hash == "" {
		return localTxID, nil
	}
	return resp.Tx.Hash, nil
}

func (b *BlockCypher) endpoint(path string, query url.Values) string {
	if b.token != "" {
		if query == nil {
			query = url.Values{}
		}
		query.Set("token", b.token)
	}
	if len(query) == 0 {
		return b.baseURL + path
	}
	return b.baseURL + path + "?" + query.Encode()
}
