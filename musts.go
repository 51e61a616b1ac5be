package intdiv

import "fmt"

// MustDivide is like [Divide] but panics if the division fails.
// It simplifies safe initialization of values from divisions that are
// known to be representable.
func MustDivide[T Integer](dividend, divisor T, mode Rounding) (quo, rem T) {
	quo, rem, err := Divide(dividend, divisor, mode)
	if err != nil {
		panic(fmt.Sprintf("MustDivide(%v, %v, %v) failed: %v", dividend, divisor, mode, err))
	}
	return quo, rem
}

// MustParseRounding is like [ParseRounding] but panics if the string cannot
// be parsed.
// It simplifies safe initialization of global variables holding rounding modes.
func MustParseRounding(s string) Rounding {
	r, err := ParseRounding(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseRounding(%q) failed: %v", s, err))
	}
	return r
}

// MustStep is like [Divider.Step] but panics if the step fails.
func (d *Divider[T]) MustStep(dividend T) T {
	quo, err := d.Step(dividend)
	if err != nil {
		panic(fmt.Sprintf("MustStep(%v) failed: %v", dividend, err))
	}
	return quo
}
