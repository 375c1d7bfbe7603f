package model

import (
	"fmt"
	"strings"
)

const (
	MinAddressCount     = 1
	MaxAddressCount     = 100
	MinPermutationCount = 1
	MaxPermutationCount = 10
)

// JobState is the lifecycle state of a sweep job.
type JobState string

var (
	JobIdle       JobState = "idle"
	JobValidating JobState = "validating"
	JobRunning    JobState = "running"
	JobCompleted  JobState = "completed"
	JobCancelled  JobState = "cancelled"
	JobFailed     JobState = "failed"
)

// Terminal reports whether no further transitions can happen.
func (s JobState) Terminal() bool {
	return s == JobCompleted || s == JobCancelled || s == JobFailed
}

// JobParams are the inputs of one sweep job.
type JobParams struct {
	Mnemonic         string
	AddressCount     int
	PermutationCount int
	// Destinations maps a chain to the sweep destination; blank means record only.
	Destinations map[Chain]string
}

// Validate checks the count bounds.
func (p JobParams) Validate() error {
	if p.AddressCount < MinAddressCount || p.AddressCount > MaxAddressCount {
		return fmt.Errorf("address count %d out of range [%d, %d]", p.AddressCount, MinAddressCount, MaxAddressCount)
	}
	if p.PermutationCount < MinPermutationCount || p.PermutationCount > MaxPermutationCount {
		return fmt.Errorf("permutation count %d out of range [%d, %d]", p.PermutationCount, MinPermutationCount, MaxPermutationCount)
	}
	return nil
}

// Destination returns the trimmed destination for a chain.
func (p JobParams) Destination(chain Chain) string {
	return strings.TrimSpace(p.Destinations[chain])
}

// JobSnapshot is a read-only view of a job's progress.
type JobSnapshot struct {
	ID        string
	State     JobState
	Completed int
	Total     int
	Results   Results
	Err       error
}

// Fraction returns the completed share in [0, 1].
func (s JobSnapshot) Fraction() float64 {
	if s.Total <= 0 {
		return 0
	}
	f := float64(s.Completed) / float64(s.Total)
	if f > 1 {
		return 1
	}
	return f
}
