package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/goodnatureofminers/walletsweep/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func delta(t *testing.T, collector prometheus.Collector, observe func()) float64 {
	t.Helper()

	before := testutil.ToFloat64(collector)
	observe()
	after := testutil.ToFloat64(collector)
	return after - before
}

func TestExplorerClientRecords(t *testing.T) {
	m := NewExplorerClient()
	start := time.Now().Add(-time.Second)

	if inc := delta(t, remoteRequestsTotal.WithLabelValues("balance", "Bitcoin", "success"), func() {
		m.Observe("balance", model.Bitcoin, nil, start)
	}); inc != 1 {
		t.Fatalf("expected explorer success counter increment, got %v", inc)
	}

	if inc := delta(t, remoteRequestsTotal.WithLabelValues("unspent", "unknown", "error"), func() {
		m.Observe("unspent", "", errors.New("boom"), start)
	}); inc != 1 {
		t.Fatalf("expected explorer error counter increment for unknown chain, got %v", inc)
	}
}

func TestRPCClientRecords(t *testing.T) {
	m := NewRPCClient(model.Ethereum)
	start := time.Now().Add(-200 * time.Millisecond)

	if inc := delta(t, remoteRequestsTotal.WithLabelValues("balance_at", "Ethereum", "error"), func() {
		m.Observe("balance_at", errors.New("oops"), start)
	}); inc != 1 {
		t.Fatalf("expected rpc error counter increment, got %v", inc)
	}
}

func TestOracleRecords(t *testing.T) {
	m := NewOracle()

	if inc := delta(t, balanceLookupsTotal.WithLabelValues("Litecoin", "cache", "success"), func() {
		m.ObserveLookup(model.Litecoin, true, nil)
	}); inc != 1 {
		t.Fatalf("expected cache lookup increment, got %v", inc)
	}
	if inc := delta(t, balanceLookupsTotal.WithLabelValues("Litecoin", "remote", "error"), func() {
		m.ObserveLookup(model.Litecoin, false, errors.New("timeout"))
	}); inc != 1 {
		t.Fatalf("expected remote error lookup increment, got %v", inc)
	}
}

func TestWorkerRecords(t *testing.T) {
	m := NewWorker()

	if inc := delta(t, sweepsTotal.WithLabelValues("Dogecoin", "insufficient_for_fee"), func() {
		m.ObserveSweep(model.Dogecoin, model.SweepInsufficientForFee)
	}); inc != 1 {
		t.Fatalf("expected sweep outcome increment, got %v", inc)
	}
	if inc := delta(t, fundedAddressesTotal.WithLabelValues("Bitcoin"), func() {
		m.ObserveFunded(model.Bitcoin)
	}); inc != 1 {
		t.Fatalf("expected funded increment, got %v", inc)
	}
	if inc := delta(t, jobsTotal.WithLabelValues("cancelled"), func() {
		m.ObserveJob(model.JobCancelled, time.Now())
	}); inc != 1 {
		t.Fatalf("expected job increment, got %v", inc)
	}
}
