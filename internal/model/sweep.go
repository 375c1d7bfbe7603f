package model

// SweepStatus classifies the outcome of a sweep attempt.
type SweepStatus int

const (
	// SweepSent means the transaction was broadcast.
	SweepSent SweepStatus = iota + 1
	// SweepInvalidDestination means the destination failed address validation.
	SweepInvalidDestination
	// SweepNoFunds means there was nothing to spend.
	SweepNoFunds
	// SweepInsufficientForFee means the balance does not exceed the network fee.
	SweepInsufficientForFee
	// SweepUnavailable means the chain has no usable backend (missing credentials).
	SweepUnavailable
	// SweepFailed covers fetch, signing and broadcast failures.
	SweepFailed
)

func (s SweepStatus) String() string {
	switch s {
	case SweepSent:
		return "sent"
	case SweepInvalidDestination:
		return "invalid_destination"
	case SweepNoFunds:
		return "no_funds"
	case SweepInsufficientForFee:
		return "insufficient_for_fee"
	case SweepUnavailable:
		return "unavailable"
	case SweepFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SweepOutcome is the tagged result of a sweep attempt.
type SweepOutcome struct {
	Status SweepStatus
	TxHash string
	Err    error
}

// Sent builds a successful outcome.
func Sent(txHash string) SweepOutcome {
	return SweepOutcome{Status: SweepSent, TxHash: txHash}
}

// NotSent builds an unsuccessful outcome with a reason.
func NotSent(status SweepStatus, err error) SweepOutcome {
	return SweepOutcome{Status: status, Err: err}
}
