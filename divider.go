package intdiv

import "fmt"

// Divider divides a sequence of dividends by a fixed divisor, carrying the
// rounding error of each division into the next one.
// The carry is the exact integer excess discarded by the previous rounding
// decision; folding it into the next dividend keeps the running sum of the
// returned quotients as close to the exactly divided running sum of the
// dividends as the rounding mode allows.
//
// The divisor and rounding mode are fixed for the lifetime of the divider.
// A divider is not safe for concurrent use by multiple goroutines: each step
// depends on the carry left by the previous one, so concurrent callers must
// either serialize access or partition work into independent dividers.
type Divider[T Integer] struct {
	divisor T
	mode    Rounding
	carry   T
}

// NewDivider returns a divider for the given divisor and rounding mode,
// with a carry of 0.
//
// NewDivider returns an error if:
//   - the divisor is 0;
//   - the mode is not one of the declared [Rounding] constants.
func NewDivider[T Integer](divisor T, mode Rounding) (*Divider[T], error) {
	if divisor == 0 {
		return nil, ErrDivisionByZero
	}
	if !mode.valid() {
		return nil, fmt.Errorf("%v: %w", mode, ErrUnknownRounding)
	}
	return &Divider[T]{divisor: divisor, mode: mode}, nil
}

// Step divides the dividend, adjusted by the carry of the previous step,
// by the divisor and returns the rounded quotient.
// The remainder of the rounding decision becomes the carry of the next step.
//
// Step returns an error if dividend + carry, the quotient, or the remainder
// is not representable in T.
// On error the carry is left unmodified, so a failed step can be retried
// with a corrected dividend without corrupting the accumulated state.
func (d *Divider[T]) Step(dividend T) (T, error) {
	adjusted, ok := add(dividend, d.carry)
	if !ok {
		return 0, ErrOverflow
	}
	quo, rem, err := Divide(adjusted, d.divisor, d.mode)
	if err != nil {
		return 0, err
	}
	d.carry = rem
	return quo, nil
}

// Reset sets the carry to 0, starting a fresh sequence without discarding
// the divisor and rounding mode.
func (d *Divider[T]) Reset() {
	d.carry = 0
}

// Carry returns the rounding error that will be folded into the next step.
func (d *Divider[T]) Carry() T {
	return d.carry
}

// Divisor returns the fixed divisor of the divider.
func (d *Divider[T]) Divisor() T {
	return d.divisor
}

// Rounding returns the fixed rounding mode of the divider.
func (d *Divider[T]) Rounding() Rounding {
	return d.mode
}
