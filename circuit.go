package qsim

import (
	"strings"

	"github.com/theapemachine/errnie"
)

/*
Circuit is an ordered sequence of gates applied left to right. Order
matters: Apply folds the state through every gate in turn, and each step
hands a brand new State to the next, so intermediate states can be kept
and inspected by the caller if it threads them itself.
*/
type Circuit struct {
	gates []Gate
}

// NewCircuit builds a circuit from gates in application order.
func NewCircuit(gates ...Gate) Circuit {
	return Circuit{gates: append([]Gate(nil), gates...)}
}

// Append returns a new circuit with more gates at the end. The receiver
// is left untouched.
func (c Circuit) Append(gates ...Gate) Circuit {
	combined := make([]Gate, 0, len(c.gates)+len(gates))
	combined = append(combined, c.gates...)
	combined = append(combined, gates...)
	return Circuit{gates: combined}
}

// Gates returns a copy of the gate sequence.
func (c Circuit) Gates() []Gate {
	return append([]Gate(nil), c.gates...)
}

// Name joins the gate names with an arrow in application order.
func (c Circuit) Name() string {
	names := make([]string, len(c.gates))
	for i, g := range c.gates {
		names[i] = g.Name()
	}
	return strings.Join(names, " -> ")
}

// Apply threads the state through every gate in order and returns the
// final state.
func (c Circuit) Apply(s State) State {
	errnie.Info(
		"Circuit.Apply - %s over %d qubits",
		c.Name(),
		s.NumQubits(),
	)
	for _, g := range c.gates {
		s = g.Apply(s)
	}
	return s
}
