package qsim

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// NormTolerance is the absolute tolerance on the total probability of a
// validated state.
const NormTolerance = 1e-10

/*
State is an immutable sparse quantum state: a mapping from basis-state
bit patterns to complex amplitudes, together with the qubit count. A
pattern absent from the map has amplitude exactly zero; absence never
means "invalid".

States are plain values. Every gate produces a new State and never touches
its input, so prior states stay valid across circuit steps and concurrent
readers can share one instance without coordination.
*/
type State struct {
	amps      map[BitPattern]complex128
	numQubits int
}

/*
NewState validates the amplitude map against the physical invariants and
returns the first violation as a typed error. The checks run in a fixed
order: non-empty, size against 2^numQubits, key lengths, finite
amplitudes, normalization within NormTolerance. The input map is copied,
so the caller keeps ownership of its own map.
*/
func NewState(amps map[BitPattern]complex128, numQubits int) (State, error) {
	if len(amps) == 0 {
		return State{}, ErrEmptyState
	}

	if max := maxBasisStates(numQubits); len(amps) > max {
		return State{}, QubitCountError{Expected: max, Actual: len(amps)}
	}

	for pattern := range amps {
		if pattern.Len() != numQubits {
			return State{}, BitLengthError{Pattern: pattern, Expected: numQubits}
		}
	}

	for _, amp := range amps {
		if reason, ok := finiteAmplitude(amp); !ok {
			return State{}, AmplitudeError{Amplitude: amp, Reason: reason}
		}
	}

	total := 0.0
	for _, amp := range amps {
		total += squaredMagnitude(amp)
	}
	if !scalar.EqualWithinAbs(total, 1.0, NormTolerance) {
		return State{}, NormalizationError{Total: total}
	}

	copied := make(map[BitPattern]complex128, len(amps))
	for pattern, amp := range amps {
		copied[pattern] = amp
	}
	return State{amps: copied, numQubits: numQubits}, nil
}

/*
UnsafeState builds a state without running any validation and without
copying the map. Gate transforms use it on the inner loop: each gate is a
unitary, so validity of the input carries over to the output by
construction and re-checking every step would be wasted work. A caller
that hands it arbitrary amplitudes gets no diagnostics, just wrong
physics; that trade-off is deliberate.
*/
func UnsafeState(amps map[BitPattern]complex128, numQubits int) State {
	return State{amps: amps, numQubits: numQubits}
}

// AllZeros prepares |0...0⟩ on n qubits through the validating path, so a
// malformed n fails at the bit pattern layer.
func AllZeros(n int) (State, error) {
	pattern, err := ZeroPattern(n)
	if err != nil {
		return State{}, err
	}
	return NewState(map[BitPattern]complex128{pattern: 1}, n)
}

// AllOnes prepares |1...1⟩ on n qubits.
func AllOnes(n int) (State, error) {
	pattern, err := NewBitPattern(^uint64(0), n)
	if err != nil {
		return State{}, err
	}
	return NewState(map[BitPattern]complex128{pattern: 1}, n)
}

// NumQubits returns the number of qubits the state spans.
func (s State) NumQubits() int {
	return s.numQubits
}

// Size returns the number of basis states with a stored amplitude.
func (s State) Size() int {
	return len(s.amps)
}

// Amplitude returns the amplitude of one basis state; absent patterns
// have amplitude zero.
func (s State) Amplitude(pattern BitPattern) complex128 {
	return s.amps[pattern]
}

// Probability returns |amplitude|² for one basis state.
func (s State) Probability(pattern BitPattern) float64 {
	return squaredMagnitude(s.amps[pattern])
}

// TotalProbability sums the squared magnitudes of every stored amplitude.
// Diagnostic read: a validated state holds 1.0 within NormTolerance and
// nothing re-enforces that here.
func (s State) TotalProbability() float64 {
	total := 0.0
	for _, amp := range s.amps {
		total += squaredMagnitude(amp)
	}
	return total
}

// Amplitudes returns a copy of the full amplitude map.
func (s State) Amplitudes() map[BitPattern]complex128 {
	copied := make(map[BitPattern]complex128, len(s.amps))
	for pattern, amp := range s.amps {
		copied[pattern] = amp
	}
	return copied
}

// Probabilities returns the probability of every stored basis state.
func (s State) Probabilities() map[BitPattern]float64 {
	probs := make(map[BitPattern]float64, len(s.amps))
	for pattern, amp := range s.amps {
		probs[pattern] = squaredMagnitude(amp)
	}
	return probs
}

// String renders the state in Dirac notation with basis states in
// ascending numeric order, e.g. "(0.707+0.000i)|0⟩ + (0.707+0.000i)|1⟩".
func (s State) String() string {
	patterns := make([]BitPattern, 0, len(s.amps))
	for pattern := range s.amps {
		patterns = append(patterns, pattern)
	}
	sort.Slice(patterns, func(i, j int) bool {
		return patterns[i].Uint64() < patterns[j].Uint64()
	})

	parts := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		amp := s.amps[pattern]
		parts = append(parts, fmt.Sprintf("(%.3f%+.3fi)|%s⟩", real(amp), imag(amp), pattern))
	}
	return strings.Join(parts, " + ")
}

// maxBasisStates returns 2^numQubits clamped to the int range. Negative
// qubit counts allow no basis states at all.
func maxBasisStates(numQubits int) int {
	if numQubits < 0 {
		return 0
	}
	if numQubits >= 63 {
		return math.MaxInt
	}
	return 1 << uint(numQubits)
}

func finiteAmplitude(amp complex128) (string, bool) {
	re, im := real(amp), imag(amp)
	switch {
	case math.IsNaN(re) || math.IsNaN(im):
		return "NaN component", false
	case math.IsInf(re, 0) || math.IsInf(im, 0):
		return "infinite component", false
	}
	return "", true
}

func squaredMagnitude(amp complex128) float64 {
	abs := cmplx.Abs(amp)
	return abs * abs
}
