package intdiv

// Integer is a constraint that permits any signed integer type.
// The package contracts are uniform across widths: [ErrOverflow] is
// reported at the bounds of whichever type is instantiated.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// add calculates x + y and checks overflow.
func add[T Integer](x, y T) (z T, ok bool) {
	z = x + y
	if (y > 0 && z < x) || (y < 0 && z > x) {
		return 0, false
	}
	return z, true
}

// sub calculates x - y and checks overflow.
func sub[T Integer](x, y T) (z T, ok bool) {
	z = x - y
	if (y > 0 && z > x) || (y < 0 && z < x) {
		return 0, false
	}
	return z, true
}

// mul calculates x * y and checks overflow.
// Both back-divisions are needed: the product of the minimum value of T
// and -1 wraps to a value that passes the z/y check alone.
func mul[T Integer](x, y T) (z T, ok bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x || z/x != y {
		return 0, false
	}
	return z, true
}

// negAbs calculates -|x|, which, unlike |x|, is representable
// for every x including the minimum value of T.
func negAbs[T Integer](x T) T {
	if x > 0 {
		return -x
	}
	return x
}

func isOdd[T Integer](x T) bool {
	return x&1 != 0
}
