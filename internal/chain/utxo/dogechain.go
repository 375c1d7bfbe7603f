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
	"github.com/shopspring/decimal"
)

// DefaultDogechainURL is the public dogechain.info API root.
const DefaultDogechainURL = "https://dogechain.info/api/v1"

// Dogechain reads and broadcasts Dogecoin data through dogechain.info.
// Amounts are reported in DOGE and converted to base units.
type Dogechain struct {
	client  *explorer.Client
	baseURL string
}

// NewDogechain constructs the Dogecoin explorer backend.
func NewDogechain(client *explorer.Client, baseURL string) *Dogechain {
	if baseURL == "" {
		baseURL = DefaultDogechainURL
	}
	return &Dogechain{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type dogechainStatus struct {
	Success int    `json:"success"`
	Error   string `json:"error"`
}

func (s dogechainStatus) err() error {
	if s.Success == 1 {
		return nil
	}
	msg := s.Error
	if msg == "" {
		msg = "unknown error"
	}
	return explorer.APIError("dogechain: %s", msg)
}

type dogechainBalance struct {
	dogechainStatus
	Balance decimal.Decimal `json:"balance"`
}

type dogechainUnspent struct {
	dogechainStatus
	UnspentOutputs []struct {
		TxHash    string          `json:"tx_hash"`
		TxOutputN uint64          `json:"tx_output_n"`
		Value     decimal.Decimal `json:"value"`
	} `json:"unspent_outputs"`
}

type dogechainPush struct {
	dogechainStatus
	TxID   string `json:"txid"`
	TxHash string `json:"tx_hash"`
}

func (d *Dogechain) Balance(ctx context.Context, address string) (*big.Int, error) {
	endpoint := d.baseURL + "/address/balance/" + url.PathEscape(address)
	var resp dogechainBalance
	err := d.client.GetJSON(ctx, "balance", model.Dogecoin, endpoint, nil, &resp)
	if err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}
	return model.ToBaseUnits(model.Dogecoin, resp.Balance), nil
}

func (d *Dogechain) Unspent(ctx context.Context, address string) ([]Unspent, error) {
	endpoint := d.baseURL + "/address/unspent/" + url.PathEscape(address)
	var resp dogechainUnspent
	if err := d.client.GetJSON(ctx, "unspent", model.Dogecoin, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}

	out := make([]Unspent, 0, len(resp.UnspentOutputs))
	for _, o := range resp.UnspentOutputs {
		value := model.ToBaseUnits(model.Dogecoin, o.Value)
		if !value.IsUint64() {
			return nil, fmt.Errorf("unspent %s:%d value %s out of range", o.TxHash, o.TxOutputN, o.Value)
		}
		u, err := newUnspent(o.TxHash, o.TxOutputN, value.Uint64())
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (d *Dogechain) Broadcast(ctx context.Context, rawTx, localTxID string) (string, error) {
	form := url.Values{"tx": {rawTx}}
	body, err := d.client.Post(ctx, "broadcast", model.Dogecoin, d.baseURL+"/send_tx",
		"application/x-www-form-urlencoded", []byte(form.Encode()))
	if err != nil {
		return "", err
	}

	var resp dogechainPush
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode send_tx response: %w", err)
	}
	if err := resp.err(); err != nil {
		return "", err
	}
	switch {
	case resp.TxID != "":
		return resp.TxID, nil
	case resp.TxHash != "":
		return resp.TxHash, nil
	default:
		return localTxID, nil
	}
}
