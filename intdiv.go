package intdiv

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when the divisor is 0.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow is returned when a quotient, remainder, or intermediate
	// value is not representable in the instantiated integer type.
	ErrOverflow = errors.New("integer overflow")

	// ErrUnknownRounding is returned when a rounding mode is not one of
	// the declared [Rounding] constants.
	ErrUnknownRounding = errors.New("unknown rounding mode")
)

// Divide calculates the quotient of dividend and divisor, rounded according
// to the given mode, together with the exact remainder of that rounding
// decision, such that
//
//	quo*divisor + rem == dividend
//
// holds exactly for every mode and every sign combination.
// The remainder is derived from the final quotient, not from Go's built-in
// remainder operator, so its sign depends on the mode:
//
//   - [Trunc]: rem is zero or has the sign of the dividend, |rem| < |divisor|.
//   - [Floor]: rem is zero or has the sign of the divisor, |rem| < |divisor|.
//   - [Ceiling]: rem is zero or has the sign opposite to the divisor, |rem| < |divisor|.
//   - [NearestTiesAwayFromZero], [NearestTiesToEven]: 2 * |rem| <= |divisor|.
//
// Divide returns an error if:
//   - the divisor is 0;
//   - the mode is not one of the declared [Rounding] constants;
//   - the quotient, quo*divisor, or the remainder is not representable in T
//     (for example, dividing the minimum value of T by -1).
func Divide[T Integer](dividend, divisor T, mode Rounding) (quo, rem T, err error) {
	if divisor == 0 {
		return 0, 0, ErrDivisionByZero
	}
	if !mode.valid() {
		return 0, 0, fmt.Errorf("%v: %w", mode, ErrUnknownRounding)
	}

	// Go's truncating division wraps for MinT / -1, the only inputs whose
	// true quotient is not representable in T.
	quo = dividend / divisor
	prod, ok := mul(quo, divisor)
	if !ok {
		return 0, 0, ErrOverflow
	}
	r := dividend - prod // truncating remainder, zero or the sign of the dividend

	if r != 0 {
		var adj T
		switch mode {
		case Trunc:
			// keep
		case Floor:
			if (r < 0) != (divisor < 0) {
				adj = -1
			}
		case Ceiling:
			if (r < 0) == (divisor < 0) {
				adj = 1
			}
		case NearestTiesAwayFromZero, NearestTiesToEven:
			// Compare 2*|r| with |divisor| as |r| against |divisor| - |r|,
			// negated so that every absolute value is representable.
			nr := negAbs(r)
			half := negAbs(divisor) - nr
			if nr < half || (nr == half && (mode == NearestTiesAwayFromZero || isOdd(quo))) {
				if (r < 0) == (divisor < 0) {
					adj = 1
				} else {
					adj = -1
				}
			}
		}
		if adj != 0 {
			quo, ok = add(quo, adj)
			if !ok {
				return 0, 0, ErrOverflow
			}
		}
	}

	// Recompute the remainder from the final quotient so that the
	// reconstruction invariant holds for every mode.
	prod, ok = mul(quo, divisor)
	if !ok {
		return 0, 0, ErrOverflow
	}
	rem, ok = sub(dividend, prod)
	if !ok {
		return 0, 0, ErrOverflow
	}
	return quo, rem, nil
}
