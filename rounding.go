package intdiv

import "fmt"

// Rounding determines how the exact quotient of a division is converted
// to an integer.
// The zero value is [Trunc], which matches the behavior of Go's built-in
// integer division.
type Rounding int8

const (
	// Trunc rounds the quotient toward zero.
	Trunc Rounding = iota

	// Floor rounds the quotient toward negative infinity.
	Floor

	// Ceiling rounds the quotient toward positive infinity.
	Ceiling

	// NearestTiesAwayFromZero rounds the quotient to the nearest integer,
	// rounding exact halves away from zero.
	NearestTiesAwayFromZero

	// NearestTiesToEven rounds the quotient to the nearest integer,
	// rounding exact halves to the even neighbor.
	NearestTiesToEven
)

func (r Rounding) valid() bool {
	return r >= Trunc && r <= NearestTiesToEven
}

// String method implements the [fmt.Stringer] interface.
func (r Rounding) String() string {
	switch r {
	case Trunc:
		return "trunc"
	case Floor:
		return "floor"
	case Ceiling:
		return "ceiling"
	case NearestTiesAwayFromZero:
		return "nearest-away"
	case NearestTiesToEven:
		return "nearest-even"
	}
	return fmt.Sprintf("Rounding(%d)", int8(r))
}

// ParseRounding converts a string produced by [Rounding.String] back to
// a rounding mode.
//
// ParseRounding returns an error if the string does not name one of the
// declared [Rounding] constants.
func ParseRounding(s string) (Rounding, error) {
	switch s {
	case "trunc":
		return Trunc, nil
	case "floor":
		return Floor, nil
	case "ceiling":
		return Ceiling, nil
	case "nearest-away":
		return NearestTiesAwayFromZero, nil
	case "nearest-even":
		return NearestTiesToEven, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownRounding)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// MarshalText returns an error if r is not one of the declared
// [Rounding] constants.
func (r Rounding) MarshalText() ([]byte, error) {
	if !r.valid() {
		return nil, fmt.Errorf("%v: %w", r, ErrUnknownRounding)
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// It accepts the strings produced by [Rounding.String].
func (r *Rounding) UnmarshalText(text []byte) error {
	v, err := ParseRounding(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
