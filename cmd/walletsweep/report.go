package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goodnatureofminers/walletsweep/internal/model"
	"github.com/goodnatureofminers/walletsweep/internal/service/sweep"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	warnColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed, color.Bold)
)

func newProgressPrinter(w io.Writer) sweep.ProgressFunc {
	return func(fraction float64, status string) {
		fmt.Fprintf(w, "[%3.0f%%] %s\n", fraction*100, status)
	}
}

func printReport(w io.Writer, state model.JobState, results model.Results) {
	separator := strings.Repeat("-", 50)
	if state == model.JobCancelled {
		warnColor.Fprintln(w, "operation cancelled, partial results:")
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "no funds found")
		return
	}

	fmt.Fprintln(w, separator)
	for _, addr := range results.Addresses() {
		res := results[addr]
		fmt.Fprintf(w, "Coin:    %s\n", res.Coin)
		fmt.Fprintf(w, "Address: %s\n", addr)
		fmt.Fprintf(w, "Path:    %s (permutation %d)\n", res.Path, res.Permutation)
		fmt.Fprintf(w, "Balance: %s %s\n", res.Balance.String(), res.Unit)
		switch res.Status() {
		case model.StatusFound:
			warnColor.Fprintln(w, "found, not configured for transfer")
		case model.StatusTransferred:
			okColor.Fprintf(w, "transfer succeeded: %s\n", res.TxHash)
		case model.StatusTransferFailed:
			failColor.Fprintf(w, "transfer failed: %s\n", res.Error)
		}
		fmt.Fprintln(w, separator)
	}
}
