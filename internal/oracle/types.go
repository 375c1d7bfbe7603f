package oracle

import (
	"context"

	"github.com/goodnatureofminers/walletsweep/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BalanceSource interface {
		ID() model.Chain
		FetchBalance(ctx context.Context, address string) (model.BalanceRecord, error)
	}
	Metrics interface {
		ObserveLookup(chain model.Chain, cached bool, err error)
	}
)
