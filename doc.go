/*
Package intdiv implements integer division under a selectable rounding mode,
with optional compensation for the rounding error accumulated across a
sequence of divisions sharing one divisor.

# Motivation

When a whole quantity is split into integer shares and each share is divided
by the same divisor, the sum of the rounded quotients can drift away from the
quotient of the whole.
For example, splitting 60 into [20, 20, 20] and dividing each share by 3 with
nearest rounding yields 7 + 7 + 7 = 21, while 60 / 3 = 20.
[Divider] removes the drift by carrying the exact remainder of each rounding
decision into the next dividend, producing 7 + 6 + 7 = 20.

# Division

[Divide] computes the rounded quotient together with the exact remainder of
the rounding decision, defined as dividend - quo*divisor.
The pair always reconstructs the dividend exactly:

	quo*divisor + rem == dividend

The remainder is recomputed from the final quotient, so the invariant holds
for every rounding mode and every sign combination of the operands.

# Rounding

Five rounding modes are supported:

	| Mode                    | 7 / 2 | -7 / 2 | 8 / 3 | -8 / 3 |
	| ----------------------- | ----- | ------ | ----- | ------ |
	| Trunc                   |     3 |     -3 |     2 |     -2 |
	| Floor                   |     3 |     -4 |     2 |     -3 |
	| Ceiling                 |     4 |     -3 |     3 |     -2 |
	| NearestTiesAwayFromZero |     4 |     -4 |     3 |     -3 |
	| NearestTiesToEven       |     4 |     -4 |     3 |     -3 |

The nearest modes differ only on exact halves: [NearestTiesAwayFromZero]
rounds them away from zero, [NearestTiesToEven] rounds them to the even
neighbor.

# Cumulative error

[Divider] owns a fixed divisor, a fixed rounding mode, and a running carry,
initially 0.
Each [Divider.Step] folds the carry into the incoming dividend, divides, and
stores the new remainder as the next carry.
Because the carry is an exact integer excess rather than a fraction, it is
re-injected at full precision, so the running sum of quotients tracks the
exact running sum of the dividends as closely as the rounding mode allows.

# Integer widths

All operations are generic over the signed integer types permitted by
[Integer].
The contracts are uniform across widths; [ErrOverflow] is reported at the
bounds of the instantiated type, and no intermediate value is ever allowed
to wrap silently.

# Errors

All operations return errors in the following cases:

  - Division by zero: [Divide] returns [ErrDivisionByZero] when the divisor
    is 0, and [NewDivider] rejects a zero divisor at construction.
  - Overflow: [Divide] and [Divider.Step] return [ErrOverflow] when a
    quotient, remainder, or carry-adjusted dividend is not representable.
    A failed step leaves the carry unmodified.
  - Unknown rounding: operations return [ErrUnknownRounding] when a
    [Rounding] value is outside the declared constant set.

[Divide] is pure and safe for concurrent use by multiple goroutines.
[Divider] is not: see its documentation.
*/
package intdiv
