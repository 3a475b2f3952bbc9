package qsim

/*
Measure reads the expected outcome of one qubit: the value holding the
larger share of probability mass, together with that share. This is a
deterministic expectation read, not a stochastic collapse. It samples no
randomness, leaves the state untouched, and does not project or
renormalize anything afterward. An exact tie resolves to outcome 1.
*/
func Measure(qubit int, s State) (int, float64) {
	p0 := 0.0
	for pattern, amp := range s.amps {
		if pattern.Bit(qubit) == 0 {
			p0 += squaredMagnitude(amp)
		}
	}

	p1 := 1 - p0
	if p0 > p1 {
		return 0, p0
	}
	return 1, p1
}
