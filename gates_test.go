package qsim

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// superposition2 prepares (|00⟩ + |01⟩ + |10⟩ + |11⟩)/2, a state where
// every gate has real work to do on both qubits.
func superposition2() State {
	amps := map[BitPattern]complex128{
		mustPattern("00"): 0.5,
		mustPattern("01"): 0.5,
		mustPattern("10"): 0.5,
		mustPattern("11"): 0.5,
	}
	s, err := NewState(amps, 2)
	if err != nil {
		panic(err)
	}
	return s
}

func TestGateNormalizationPreservation(t *testing.T) {
	Convey("Given a validated two-qubit superposition", t, func() {
		gates := []Gate{
			X(0), X(1),
			H(0), H(1),
			CX(0, 1), CX(1, 0),
			S(0), S(1),
			T(0), T(1),
			Oracle(ConstZero), Oracle(ConstOne),
			Oracle(Identity), Oracle(Negation),
		}

		Convey("Every gate should keep total probability at 1", func() {
			for _, g := range gates {
				out := g.Apply(superposition2())
				So(out.TotalProbability(), ShouldAlmostEqual, 1.0, NormTolerance)
			}
		})
	})
}

func TestPauliXGate(t *testing.T) {
	Convey("Given |00⟩", t, func() {
		s, _ := AllZeros(2)

		Convey("X(0) should remap it to |01⟩ with the amplitude unchanged", func() {
			out := X(0).Apply(s)
			So(out.Size(), ShouldEqual, 1)
			So(out.Amplitude(mustPattern("01")), ShouldEqual, complex(1, 0))
		})

		Convey("X applied twice should restore the original mapping", func() {
			out := X(1).Apply(X(1).Apply(s))
			So(out.Amplitudes(), ShouldResemble, s.Amplitudes())
		})
	})
}

func TestControlledXGate(t *testing.T) {
	Convey("Given basis states on two qubits", t, func() {
		Convey("CX should leave the target alone when the control reads 0", func() {
			s, _ := AllZeros(2)
			out := CX(0, 1).Apply(s)
			So(out.Amplitude(mustPattern("00")), ShouldEqual, complex(1, 0))
		})

		Convey("CX should flip the target when the control reads 1", func() {
			s, err := NewState(map[BitPattern]complex128{mustPattern("01"): 1}, 2)
			So(err, ShouldBeNil)

			out := CX(0, 1).Apply(s)
			So(out.Amplitude(mustPattern("11")), ShouldEqual, complex(1, 0))
			So(out.Probability(mustPattern("01")), ShouldEqual, 0.0)
		})
	})
}

func TestPhaseGates(t *testing.T) {
	Convey("Given the one-qubit basis states", t, func() {
		zero, _ := AllZeros(1)
		one, _ := AllOnes(1)

		Convey("S should multiply the |1⟩ amplitude by i", func() {
			out := S(0).Apply(one)
			So(out.Amplitude(mustPattern("1")), ShouldEqual, complex(0, 1))

			untouched := S(0).Apply(zero)
			So(untouched.Amplitude(mustPattern("0")), ShouldEqual, complex(1, 0))
		})

		Convey("T should multiply the |1⟩ amplitude by e^{iπ/4}", func() {
			out := T(0).Apply(one)
			amp := out.Amplitude(mustPattern("1"))
			So(real(amp), ShouldAlmostEqual, 1/math.Sqrt2, 1e-12)
			So(imag(amp), ShouldAlmostEqual, 1/math.Sqrt2, 1e-12)
		})

		Convey("S should equal T applied twice", func() {
			viaS := S(0).Apply(one)
			viaT := T(0).Apply(T(0).Apply(one))

			ampS := viaS.Amplitude(mustPattern("1"))
			ampT := viaT.Amplitude(mustPattern("1"))
			So(real(ampT), ShouldAlmostEqual, real(ampS), 1e-12)
			So(imag(ampT), ShouldAlmostEqual, imag(ampS), 1e-12)
		})
	})
}

func TestHadamardGate(t *testing.T) {
	Convey("Given |0⟩ on a single qubit", t, func() {
		zero, _ := AllZeros(1)

		Convey("H should split it into two equal branches", func() {
			out := H(0).Apply(zero)
			So(out.Size(), ShouldEqual, 2)
			So(out.Probability(mustPattern("0")), ShouldAlmostEqual, 0.5, 1e-12)
			So(out.Probability(mustPattern("1")), ShouldAlmostEqual, 0.5, 1e-12)
		})

		Convey("H applied twice should interfere back to |0⟩", func() {
			out := H(0).Apply(H(0).Apply(zero))

			Convey("The |0⟩ amplitude should recombine to 1+0i", func() {
				amp := out.Amplitude(mustPattern("0"))
				So(real(amp), ShouldAlmostEqual, 1.0, NormTolerance)
				So(imag(amp), ShouldEqual, 0.0)
			})

			Convey("The |1⟩ branch should cancel exactly, entry retained", func() {
				// Both contributions carry the same rounded magnitude, so
				// the subtraction cancels to exactly zero. Nothing prunes
				// the entry.
				So(out.Size(), ShouldEqual, 2)
				So(out.Amplitude(mustPattern("1")), ShouldEqual, complex(0, 0))
			})
		})
	})

	Convey("Given |1⟩ on a single qubit", t, func() {
		one, _ := AllOnes(1)

		Convey("H should negate the |1⟩ branch", func() {
			out := H(0).Apply(one)
			So(real(out.Amplitude(mustPattern("0"))), ShouldAlmostEqual, 1/math.Sqrt2, 1e-12)
			So(real(out.Amplitude(mustPattern("1"))), ShouldAlmostEqual, -1/math.Sqrt2, 1e-12)
		})

		Convey("H applied twice should return to |1⟩ up to rounding", func() {
			out := H(0).Apply(H(0).Apply(one))
			So(out.Probability(mustPattern("1")), ShouldAlmostEqual, 1.0, NormTolerance)
			So(out.Probability(mustPattern("0")), ShouldAlmostEqual, 0.0, NormTolerance)
		})
	})
}

func TestOracleGate(t *testing.T) {
	Convey("Given two-qubit basis states, qubit 0 input and qubit 1 output", t, func() {
		cases := []struct {
			f       BooleanFunction
			in, out string
		}{
			{ConstZero, "00", "00"},
			{ConstZero, "01", "01"},
			{ConstOne, "00", "10"},
			{ConstOne, "11", "01"},
			{Identity, "00", "00"},
			{Identity, "01", "11"},
			{Identity, "11", "01"},
			{Negation, "00", "10"},
			{Negation, "01", "01"},
			{Negation, "10", "00"},
		}

		Convey("The output qubit should become bit1 XOR f(bit0)", func() {
			for _, tc := range cases {
				s, err := NewState(map[BitPattern]complex128{mustPattern(tc.in): 1}, 2)
				So(err, ShouldBeNil)

				result := Oracle(tc.f).Apply(s)
				So(result.Amplitude(mustPattern(tc.out)), ShouldEqual, complex(1, 0))
			}
		})
	})
}

func TestBooleanFunctions(t *testing.T) {
	Convey("Given the closed set of oracle functions", t, func() {
		Convey("Evaluation should match each variant's truth table", func() {
			So(ConstZero.Eval(0), ShouldEqual, 0)
			So(ConstZero.Eval(1), ShouldEqual, 0)
			So(ConstOne.Eval(0), ShouldEqual, 1)
			So(ConstOne.Eval(1), ShouldEqual, 1)
			So(Identity.Eval(0), ShouldEqual, 0)
			So(Identity.Eval(1), ShouldEqual, 1)
			So(Negation.Eval(0), ShouldEqual, 1)
			So(Negation.Eval(1), ShouldEqual, 0)
		})

		Convey("Only the constant variants should report IsConstant", func() {
			So(ConstZero.IsConstant(), ShouldBeTrue)
			So(ConstOne.IsConstant(), ShouldBeTrue)
			So(Identity.IsConstant(), ShouldBeFalse)
			So(Negation.IsConstant(), ShouldBeFalse)
		})
	})
}
