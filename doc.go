/*
Package fixedpoint implements fixed-point numbers built from an integer
significand and a signed power-of-radix scale.
It is aimed at data that is naturally kept as scaled integers, such as
monetary minor units, exchange ticks, and columnar decimal payloads, and it
interoperates with the [decimal] package for textual and database boundaries.

# Features

  - Immutable values, ensuring safe usage across multiple goroutines
  - Two significand widths (int32, int64) and two radixes (2, 10),
    selected with type parameters
  - Verbatim construction from already-scaled integers, and shifting
    construction from any built-in numeric type
  - Arithmetic at native integer speed, with checked variants that
    report overflow instead of wrapping
  - Conversion to and from [decimal.Decimal] values

# Representation

A [Fixed] number holds a significand of type R and a [Scale] s, and denotes
the number significand * radix^s.
A negative scale places digits after the radix point, a positive scale adds
trailing zeros to the integer part:

	New[int64, Base10](12345, -2) // 123.45
	New[int64, Base10](1, 2)      // 100
	New[int64, Base2](3, -1)      // 1.5

The same number has many representations: 100 can be held as (100, 0),
(10, 1), or (1, 2).
The operators == and != compare representations, not numbers, and therefore
distinguish these three values; use [Fixed.Equal] for numeric equality.

# Operations

Addition, subtraction, and comparison first bring both operands to the
smaller of the two scales.
The operand with the larger scale is multiplied down, so alignment never
discards digits; the result keeps the smaller scale.
Multiplication multiplies the significands and adds the scales, and division
divides the significands, truncating towards zero, and subtracts the scales.

The plain operations are unchecked: results that do not fit the significand
type wrap around, the same way native integer arithmetic does, and a zero
divisor panics.
Each of them has a checked twin with the Exact suffix, such as
[Fixed.AddExact], that returns an error instead.
The predicates [AddOverflows], [SubOverflows], [MulOverflows], and
[DivOverflows] expose the underlying range checks for use on raw
significands.

# Conversions

[As] converts a number to any built-in numeric type by converting the
significand first and then shifting in the target type's arithmetic.
[Fixed.Float64] is the shorthand for As[float64] and backs [Fixed.String].
[ToDecimal] and [NewFromDecimal] translate base-10 numbers to and from
[decimal.Decimal], whose parsing, formatting, and marshaling cover text,
JSON, and SQL boundaries.

# Errors

Checked constructors and operations return [ErrOverflow] when a result does
not fit the significand type and [ErrDivisionByZero] when the divisor is
zero, both wrapped with the failing operands.
Use [errors.Is] to test for them.

[decimal]: https://pkg.go.dev/github.com/govalues/decimal
[errors.Is]: https://pkg.go.dev/errors#Is
*/
package fixedpoint
