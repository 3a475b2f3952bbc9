package qsim

// BooleanFunction is the closed set of one-bit classical functions an
// Oracle gate can encode. Two are constant, two are balanced.
type BooleanFunction int

const (
	ConstZero BooleanFunction = iota
	ConstOne
	Identity
	Negation
)

// Eval applies the function to a single bit.
func (f BooleanFunction) Eval(bit int) int {
	switch f {
	case ConstZero:
		return 0
	case ConstOne:
		return 1
	case Identity:
		return bit
	case Negation:
		return bit ^ 1
	}
	return 0
}

// IsConstant reports whether the function ignores its input.
func (f BooleanFunction) IsConstant() bool {
	return f == ConstZero || f == ConstOne
}

func (f BooleanFunction) String() string {
	switch f {
	case ConstZero:
		return "const-0"
	case ConstOne:
		return "const-1"
	case Identity:
		return "identity"
	case Negation:
		return "negation"
	}
	return "unknown"
}
