package qsim

import (
	"fmt"
	"math"
)

/*
Gate is a named pure transform from one State to the next. Applying a
gate never mutates its input; every transform builds a fresh amplitude
map and hands it to UnsafeState, trusting that a unitary applied to a
valid state yields a valid state. Nothing re-validates along the way.
*/
type Gate struct {
	name  string
	apply func(State) State
}

// Name returns the gate's display name, e.g. "H(0)".
func (g Gate) Name() string {
	return g.name
}

// Apply runs the gate's transform on a state.
func (g Gate) Apply(s State) State {
	return g.apply(s)
}

var (
	// invSqrt2 is the Hadamard coefficient 1/√2.
	invSqrt2 = complex(1/math.Sqrt2, 0)

	// tPhase is e^{iπ/4} = (1+i)/√2, the T gate phase.
	tPhase = complex(1/math.Sqrt2, 1/math.Sqrt2)
)

// X flips qubit q in every basis state; amplitudes ride along unchanged.
// The remap is a bijection on keys, so the map size is preserved.
func X(q int) Gate {
	return Gate{
		name: fmt.Sprintf("X(%d)", q),
		apply: func(s State) State {
			next := make(map[BitPattern]complex128, s.Size())
			for pattern, amp := range s.amps {
				next[pattern.Flip(q)] = amp
			}
			return UnsafeState(next, s.numQubits)
		},
	}
}

// CX flips the target qubit in every basis state whose control qubit
// reads 1; all other entries pass through untouched.
func CX(control, target int) Gate {
	return Gate{
		name: fmt.Sprintf("CX(%d,%d)", control, target),
		apply: func(s State) State {
			next := make(map[BitPattern]complex128, s.Size())
			for pattern, amp := range s.amps {
				if pattern.Bit(control) == 1 {
					pattern = pattern.Flip(target)
				}
				next[pattern] = amp
			}
			return UnsafeState(next, s.numQubits)
		},
	}
}

// S multiplies the amplitude by i wherever qubit q reads 1.
func S(q int) Gate {
	return Gate{
		name: fmt.Sprintf("S(%d)", q),
		apply: func(s State) State {
			next := make(map[BitPattern]complex128, s.Size())
			for pattern, amp := range s.amps {
				if pattern.Bit(q) == 1 {
					amp *= 1i
				}
				next[pattern] = amp
			}
			return UnsafeState(next, s.numQubits)
		},
	}
}

// T applies the π/4 phase e^{iπ/4} wherever qubit q reads 1.
func T(q int) Gate {
	return Gate{
		name: fmt.Sprintf("T(%d)", q),
		apply: func(s State) State {
			next := make(map[BitPattern]complex128, s.Size())
			for pattern, amp := range s.amps {
				if pattern.Bit(q) == 1 {
					amp *= tPhase
				}
				next[pattern] = amp
			}
			return UnsafeState(next, s.numQubits)
		},
	}
}

/*
H applies the Hadamard 1/√2 [[1,1],[1,-1]] to qubit q. Each source entry
spawns two contributions: one to the pattern with q forced to 0 and one
with q forced to 1, the latter negated when the source bit was 1.

Contributions landing on the same resulting basis state must be summed,
never overwritten: that accumulation is where interference happens, and
replacing it with assignment silently breaks unitarity. Entries that
cancel to (near-)zero stay in the map; nothing prunes them.
*/
func H(q int) Gate {
	return Gate{
		name: fmt.Sprintf("H(%d)", q),
		apply: func(s State) State {
			next := make(map[BitPattern]complex128, 2*s.Size())
			for pattern, amp := range s.amps {
				contribution := amp * invSqrt2
				next[pattern.ClearBit(q)] += contribution
				if pattern.Bit(q) == 0 {
					next[pattern.SetBit(q)] += contribution
				} else {
					next[pattern.SetBit(q)] -= contribution
				}
			}
			return UnsafeState(next, s.numQubits)
		},
	}
}

// Oracle encodes a classical boolean function reversibly over two qubits:
// qubit 0 carries the input, qubit 1 accumulates f(input) by XOR.
func Oracle(f BooleanFunction) Gate {
	return Gate{
		name: fmt.Sprintf("Oracle(%s)", f),
		apply: func(s State) State {
			next := make(map[BitPattern]complex128, s.Size())
			for pattern, amp := range s.amps {
				if pattern.Bit(1)^f.Eval(pattern.Bit(0)) == 1 {
					pattern = pattern.SetBit(1)
				} else {
					pattern = pattern.ClearBit(1)
				}
				next[pattern] = amp
			}
			return UnsafeState(next, s.numQubits)
		},
	}
}
