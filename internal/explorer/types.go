package explorer

import (
	"time"

	"github.com/goodnatureofminers/walletsweep/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records metrics for explorer calls.
	Metrics interface {
		Observe(operation string, chain model.Chain, err error, started time.Time)
	}
)
