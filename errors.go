package qsim

import (
	"errors"
	"fmt"
)

// ErrEmptyState reports a quantum state with no amplitudes at all.
var ErrEmptyState = errors.New("quantum state must contain at least one amplitude")

// QubitCountError reports a state holding more basis states than its qubit
// count allows. Expected is the maximum number of basis states, 2^numQubits.
type QubitCountError struct {
	Expected int
	Actual   int
}

func (e QubitCountError) Error() string {
	return fmt.Sprintf("state holds %d basis states but its qubit count allows at most %d", e.Actual, e.Expected)
}

// BitLengthError reports a basis-state key whose bit length does not match
// the state's qubit count.
type BitLengthError struct {
	Pattern  BitPattern
	Expected int
}

func (e BitLengthError) Error() string {
	return fmt.Sprintf("basis state %q has %d bits, want %d", e.Pattern.String(), e.Pattern.Len(), e.Expected)
}

// AmplitudeError reports an amplitude with a non-finite component.
type AmplitudeError struct {
	Amplitude complex128
	Reason    string
}

func (e AmplitudeError) Error() string {
	return fmt.Sprintf("amplitude %v is not finite: %s", e.Amplitude, e.Reason)
}

// NormalizationError reports squared amplitude magnitudes that do not sum
// to 1.0 within NormTolerance.
type NormalizationError struct {
	Total float64
}

func (e NormalizationError) Error() string {
	return fmt.Sprintf("squared amplitudes sum to %.12f, want 1.0 within %g", e.Total, NormTolerance)
}
