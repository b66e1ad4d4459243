package fixedpoint

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

var (
	// ErrOverflow indicates that a result does not fit the range of the
	// significand type.
	ErrOverflow = errors.New("significand overflow")

	// ErrDivisionByZero indicates a division by zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Rep is the constraint for significand types.
type Rep interface {
	~int32 | ~int64
}

// Numeric is the constraint for the built-in numeric types that fixed-point
// numbers can be constructed from and converted to.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Fixed is a fixed-point number: an integer significand of type R scaled by
// a signed power of the radix B.
// The numeric value of the number is significand * radix^scale.
//
// The zero value of Fixed is the number 0 at scale 0 and is ready to use.
// Fixed is designed to be safe for concurrent use by multiple goroutines.
//
// The operators == and != compare representations, not numbers: they
// distinguish equal numbers held at different scales.
// Use [Fixed.Equal] for numeric equality.
type Fixed[R Rep, B Radix] struct {
	value R     // significand
	scale Scale // power of the radix
}

// Decimal32 is a decimal fixed-point number with a 32-bit significand.
type Decimal32 = Fixed[int32, Base10]

// Decimal64 is a decimal fixed-point number with a 64-bit significand.
type Decimal64 = Fixed[int64, Base10]

// Binary32 is a binary fixed-point number with a 32-bit significand.
type Binary32 = Fixed[int32, Base2]

// Binary64 is a binary fixed-point number with a 64-bit significand.
type Binary64 = Fixed[int64, Base2]

// New returns a fixed-point number with the given significand and scale.
// The pair is adopted verbatim: in base 10, New(12345, -2) is the number
// 123.45 and New(1, 2) is the number 100.
// See also [NewFromScaled] and [NewFromNumeric].
func New[R Rep, B Radix](value R, scale Scale) Fixed[R, B] {
	return Fixed[R, B]{value: value, scale: scale}
}

// NewDecimal32 returns a decimal number equal to value * 10^scale.
func NewDecimal32(value int32, scale Scale) Decimal32 {
	return New[int32, Base10](value, scale)
}

// NewDecimal64 returns a decimal number equal to value * 10^scale.
func NewDecimal64(value int64, scale Scale) Decimal64 {
	return New[int64, Base10](value, scale)
}

// NewBinary32 returns a binary number equal to value * 2^scale.
func NewBinary32(value int32, scale Scale) Binary32 {
	return New[int32, Base2](value, scale)
}

// NewBinary64 returns a binary number equal to value * 2^scale.
func NewBinary64(value int64, scale Scale) Binary64 {
	return New[int64, Base2](value, scale)
}

// Scaled is the raw representation of a fixed-point number: a significand
// and a scale, with no radix attached.
// It is the exchange format for collaborators that already hold scaled
// integers, such as database drivers and columnar decoders.
type Scaled[R Rep] struct {
	Value R
	Scale Scale
}

// NewFromScaled returns a fixed-point number that adopts the significand
// and scale of si verbatim.
// See also method [Fixed.Scaled].
func NewFromScaled[R Rep, B Radix](si Scaled[R]) Fixed[R, B] {
	return New[R, B](si.Value, si.Scale)
}

// NewFromNumeric returns a fixed-point number that represents value at the
// given scale.
// The value is shifted in its own arithmetic before the significand is
// converted to R: NewFromNumeric[int64, Base10](123.45, -2) stores the
// significand 12345, while a positive scale discards low digits, so
// NewFromNumeric[int64, Base10](12345, 2) stores 123 and denotes 12300.
//
// NewFromNumeric does not check that the shifted value fits R: if it does
// not, the result is unpredictable.
// Use [NewFromInt64] or [NewFromFloat64] to detect overflow.
func NewFromNumeric[R Rep, B Radix, T Numeric](value T, scale Scale) Fixed[R, B] {
	return New[R, B](R(shift[T, B](value, scale)), scale)
}

// NewFromInt64 converts an integer to a fixed-point number held at the
// given scale.
// A negative scale is exact, and a positive scale truncates the value
// towards zero to a multiple of radix^scale.
//
// NewFromInt64 returns an error if the shifted value does not fit the
// significand type R.
func NewFromInt64[R Rep, B Radix](value int64, scale Scale) (Fixed[R, B], error) {
	f, err := newFromInt64[R, B](value, scale)
	if err != nil {
		return Fixed[R, B]{}, fmt.Errorf("converting integer %v at scale %v: %w", value, scale, err)
	}
	return f, nil
}

func newFromInt64[R Rep, B Radix](value int64, scale Scale) (Fixed[R, B], error) {
	v := value
	switch {
	case scale > 0:
		v = rightShift[int64, B](v, scale)
	case scale < 0:
		var ok bool
		v, ok = leftShiftExact[int64, B](v, scale.Neg())
		if !ok {
			return Fixed[R, B]{}, overflowError[R]()
		}
	}
	min, max := limits[R]()
	if v < int64(min) || v > int64(max) {
		return Fixed[R, B]{}, overflowError[R]()
	}
	return New[R, B](R(v), scale), nil
}

// MustNewFromInt64 is like [NewFromInt64] but panics if the number cannot
// be constructed.
// It simplifies safe initialization of global variables holding fixed-point
// numbers.
func MustNewFromInt64[R Rep, B Radix](value int64, scale Scale) Fixed[R, B] {
	f, err := NewFromInt64[R, B](value, scale)
	if err != nil {
		panic(fmt.Sprintf("NewFromInt64[%s](%v, %v) failed: %v", repName[R](), value, scale, err))
	}
	return f
}

// NewFromFloat64 converts a float to a (possibly truncated) fixed-point
// number held at the given scale.
//
// NewFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the shifted value, truncated towards zero, does not fit the
//     significand type R.
func NewFromFloat64[R Rep, B Radix](value float64, scale Scale) (Fixed[R, B], error) {
	f, err := newFromFloat64[R, B](value, scale)
	if err != nil {
		return Fixed[R, B]{}, fmt.Errorf("converting float %v at scale %v: %w", value, scale, err)
	}
	return f, nil
}

func newFromFloat64[R Rep, B Radix](value float64, scale Scale) (Fixed[R, B], error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Fixed[R, B]{}, fmt.Errorf("special value %v", value)
	}
	min, _ := limits[R]()
	v := math.Trunc(shift[float64, B](value, scale))
	// float64(min) is a power of two and therefore exact, float64(max) is not.
	lo, hi := float64(min), -float64(min)
	if v < lo || v >= hi {
		return Fixed[R, B]{}, overflowError[R]()
	}
	return New[R, B](R(v), scale), nil
}

// MustNewFromFloat64 is like [NewFromFloat64] but panics if the number
// cannot be constructed.
// It simplifies safe initialization of global variables holding fixed-point
// numbers.
func MustNewFromFloat64[R Rep, B Radix](value float64, scale Scale) Fixed[R, B] {
	f, err := NewFromFloat64[R, B](value, scale)
	if err != nil {
		panic(fmt.Sprintf("NewFromFloat64[%s](%v, %v) failed: %v", repName[R](), value, scale, err))
	}
	return f
}

// As converts a fixed-point number to the numeric type U.
// The significand is converted to U first and then shifted back through the
// scale in U's arithmetic: converting to a floating-point type yields the
// numeric value of x, and converting to an integer type truncates the
// fractional part towards zero.
//
// As does not check that the result fits U: if it does not, the result is
// unpredictable.
func As[U Numeric, R Rep, B Radix](x Fixed[R, B]) U {
	return shift[U, B](U(x.value), x.scale.Neg())
}

// Value returns the significand of x.
// See also methods [Fixed.Scale], [Fixed.Scaled].
func (x Fixed[R, B]) Value() R {
	return x.value
}

// Scale returns the scale of x.
func (x Fixed[R, B]) Scale() Scale {
	return x.scale
}

// Scaled returns the raw representation of x.
// See also [NewFromScaled].
func (x Fixed[R, B]) Scaled() Scaled[R] {
	return Scaled[R]{Value: x.value, Scale: x.scale}
}

// Radix returns the base of the positional notation of x: 2 or 10.
func (Fixed[R, B]) Radix() int32 {
	return radix[B]()
}

// Float64 returns x as a float64.
// See also [As].
func (x Fixed[R, B]) Float64() float64 {
	return As[float64](x)
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x = 0
//	+1 if x > 0
func (x Fixed[R, B]) Sign() int {
	switch {
	case x.value < 0:
		return -1
	case x.value > 0:
		return 1
	}
	return 0
}

// IsNeg returns:
//
//	true  if x < 0
//	false otherwise
func (x Fixed[R, B]) IsNeg() bool {
	return x.value < 0
}

// IsPos returns:
//
//	true  if x > 0
//	false otherwise
func (x Fixed[R, B]) IsPos() bool {
	return x.value > 0
}

// IsZero returns:
//
//	true  if x = 0
//	false otherwise
func (x Fixed[R, B]) IsZero() bool {
	return x.value == 0
}

// Abs returns the absolute value of x.
func (x Fixed[R, B]) Abs() Fixed[R, B] {
	if x.value < 0 {
		return x.Neg()
	}
	return x
}

// Neg returns a number with the opposite sign.
func (x Fixed[R, B]) Neg() Fixed[R, B] {
	return New[R, B](-x.value, x.scale)
}

// Zero returns a number with a value of 0, having the same scale as x.
// See also method [Fixed.ULP].
func (x Fixed[R, B]) Zero() Fixed[R, B] {
	return New[R, B](0, x.scale)
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// difference between two numbers with the same scale as x.
// See also methods [Fixed.Inc], [Fixed.Dec].
func (x Fixed[R, B]) ULP() Fixed[R, B] {
	return New[R, B](1, x.scale)
}

// Inc returns x plus one unit in the last place.
func (x Fixed[R, B]) Inc() Fixed[R, B] {
	return x.Add(x.ULP())
}

// Dec returns x minus one unit in the last place.
func (x Fixed[R, B]) Dec() Fixed[R, B] {
	return x.Sub(x.ULP())
}

// align brings x and y to their common scale, the smaller of the two, so
// that rescaling only ever multiplies and no digits are discarded.
func (x Fixed[R, B]) align(y Fixed[R, B]) (xv, yv R, s Scale) {
	s = min(x.scale, y.scale)
	xv = shift[R, B](x.value, s-x.scale)
	yv = shift[R, B](y.value, s-y.scale)
	return xv, yv, s
}

// alignExact is like align but checks that the rescaled significands fit R.
func (x Fixed[R, B]) alignExact(y Fixed[R, B]) (xv, yv R, s Scale, err error) {
	var ok bool
	s = min(x.scale, y.scale)
	if xv, ok = leftShiftExact[R, B](x.value, x.scale-s); !ok {
		return 0, 0, 0, overflowError[R]()
	}
	if yv, ok = leftShiftExact[R, B](y.value, y.scale-s); !ok {
		return 0, 0, 0, overflowError[R]()
	}
	return xv, yv, s, nil
}

// Add returns the sum of x and y, held at the smaller of the two scales.
// Add does not check overflow: a sum that does not fit the significand type
// wraps around, the same way native integer addition does.
// See also [Fixed.AddExact].
func (x Fixed[R, B]) Add(y Fixed[R, B]) Fixed[R, B] {
	xv, yv, s := x.align(y)
	return New[R, B](xv+yv, s)
}

// AddExact returns the sum of x and y, held at the smaller of the two
// scales.
//
// AddExact returns an error if the rescaled operands or the sum do not fit
// the significand type R.
func (x Fixed[R, B]) AddExact(y Fixed[R, B]) (Fixed[R, B], error) {
	z, err := x.addExact(y)
	if err != nil {
		return Fixed[R, B]{}, fmt.Errorf("computing [%v + %v]: %w", x, y, err)
	}
	return z, nil
}

func (x Fixed[R, B]) addExact(y Fixed[R, B]) (Fixed[R, B], error) {
	xv, yv, s, err := x.alignExact(y)
	if err != nil {
		return Fixed[R, B]{}, err
	}
	if AddOverflows(xv, yv) {
		return Fixed[R, B]{}, overflowError[R]()
	}
	return New[R, B](xv+yv, s), nil
}

// Sub returns the difference of x and y, held at the smaller of the two
// scales.
// Sub does not check overflow.
// See also [Fixed.SubExact].
func (x Fixed[R, B]) Sub(y Fixed[R, B]) Fixed[R, B] {
	xv, yv, s := x.align(y)
	return New[R, B](xv-yv, s)
}

// SubExact returns the difference of x and y, held at the smaller of the
// two scales.
//
// SubExact returns an error if the rescaled operands or the difference do
// not fit the significand type R.
func (x Fixed[R, B]) SubExact(y Fixed[R, B]) (Fixed[R, B], error) {
	z, err := x.subExact(y)
	if err != nil {
		return Fixed[R, B]{}, fmt.Errorf("computing [%v - %v]: %w", x, y, err)
	}
	return z, nil
}

func (x Fixed[R, B]) subExact(y Fixed[R, B]) (Fixed[R, B], error) {
	xv, yv, s, err := x.alignExact(y)
	if err != nil {
		return Fixed[R, B]{}, err
	}
	if SubOverflows(xv, yv) {
		return Fixed[R, B]{}, overflowError[R]()
	}
	return New[R, B](xv-yv, s), nil
}

// Mul returns the product of x and y: the significands multiply and the
// scales add, so the product of numbers held at scales -2 and -1 is held at
// scale -3.
// Mul does not check overflow.
// See also [Fixed.MulExact].
func (x Fixed[R, B]) Mul(y Fixed[R, B]) Fixed[R, B] {
	return New[R, B](x.value*y.value, x.scale+y.scale)
}

// MulExact returns the product of x and y, held at the sum of the two
// scales.
//
// MulExact returns an error if the product does not fit the significand
// type R.
func (x Fixed[R, B]) MulExact(y Fixed[R, B]) (Fixed[R, B], error) {
	z, err := x.mulExact(y)
	if err != nil {
		return Fixed[R, B]{}, fmt.Errorf("computing [%v * %v]: %w", x, y, err)
	}
	return z, nil
}

func (x Fixed[R, B]) mulExact(y Fixed[R, B]) (Fixed[R, B], error) {
	if MulOverflows(x.value, y.value) {
		return Fixed[R, B]{}, overflowError[R]()
	}
	return New[R, B](x.value*y.value, x.scale+y.scale), nil
}

// Div returns the quotient of x and y: the significands divide, truncating
// towards zero, and the scales subtract.
// Div does not check overflow and panics on a zero divisor, the same way
// native integer division does.
// See also [Fixed.DivExact].
func (x Fixed[R, B]) Div(y Fixed[R, B]) Fixed[R, B] {
	return New[R, B](x.value/y.value, x.scale-y.scale)
}

// DivExact returns the quotient of x and y, held at the difference of the
// two scales.
//
// DivExact returns an error if:
//   - the divisor is 0;
//   - the quotient does not fit the significand type R, which happens only
//     when the significand of x is the minimum value of R and the
//     significand of y is -1.
func (x Fixed[R, B]) DivExact(y Fixed[R, B]) (Fixed[R, B], error) {
	z, err := x.divExact(y)
	if err != nil {
		return Fixed[R, B]{}, fmt.Errorf("computing [%v / %v]: %w", x, y, err)
	}
	return z, nil
}

func (x Fixed[R, B]) divExact(y Fixed[R, B]) (Fixed[R, B], error) {
	if y.value == 0 {
		return Fixed[R, B]{}, ErrDivisionByZero
	}
	if DivOverflows(x.value, y.value) {
		return Fixed[R, B]{}, overflowError[R]()
	}
	return New[R, B](x.value/y.value, x.scale-y.scale), nil
}

// Equal reports whether x and y represent the same number, regardless of
// scale: in base 10, the number 1 held at scale 2 equals the number 100
// held at scale 0.
// If rescaling to the common scale overflows R, the result is
// unpredictable; see [Fixed.AddExact] for the checked range discipline.
func (x Fixed[R, B]) Equal(y Fixed[R, B]) bool {
	return x.Cmp(y) == 0
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x = y
//	+1 if x > y
//
// If rescaling to the common scale overflows R, the result is
// unpredictable.
func (x Fixed[R, B]) Cmp(y Fixed[R, B]) int {
	xv, yv, _ := x.align(y)
	switch {
	case xv < yv:
		return -1
	case xv > yv:
		return 1
	}
	return 0
}

// Rescale returns the number re-expressed at the given scale.
// Moving to a smaller scale is exact, and moving to a larger scale
// truncates digits below radix^scale towards zero.
// Rescale does not check overflow.
// See also [Fixed.RescaleExact].
func (x Fixed[R, B]) Rescale(scale Scale) Fixed[R, B] {
	return New[R, B](shift[R, B](x.value, scale-x.scale), scale)
}

// RescaleExact returns the number re-expressed at the given scale.
//
// RescaleExact returns an error if the rescaled significand does not fit
// the significand type R.
func (x Fixed[R, B]) RescaleExact(scale Scale) (Fixed[R, B], error) {
	z, err := x.rescaleExact(scale)
	if err != nil {
		return Fixed[R, B]{}, fmt.Errorf("rescaling %v to %v: %w", x, scale, err)
	}
	return z, nil
}

func (x Fixed[R, B]) rescaleExact(scale Scale) (Fixed[R, B], error) {
	if scale >= x.scale {
		return x.Rescale(scale), nil
	}
	v, ok := leftShiftExact[R, B](x.value, x.scale-scale)
	if !ok {
		return Fixed[R, B]{}, overflowError[R]()
	}
	return New[R, B](v, scale), nil
}

// String implements the [fmt.Stringer] interface and returns the shortest
// decimal representation of [Fixed.Float64].
// See also method [Fixed.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Fixed[R, B]) String() string {
	return strconv.FormatFloat(x.Float64(), 'g', -1, 64)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example  | Description   |
//	| ------ | -------- | ------------- |
//	| %s, %v | 123.45   | Number        |
//	| %q     | "123.45" | Quoted number |
//	| %f     | 123.45   | Number        |
//	| %d     | 12345    | Significand   |
//
// The '-' format flag can be used with all verbs.
// Precision is only supported for the %f verb; the default precision
// renders all digits of the fractional part.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Fixed[R, B]) Format(state fmt.State, verb rune) {
	var b []byte
	switch verb {
	case 's', 'S', 'v', 'V':
		b = append(b, x.String()...)
	case 'q', 'Q':
		b = strconv.AppendQuote(b, x.String())
	case 'f', 'F':
		prec := -1
		if p, ok := state.Precision(); ok {
			prec = p
		}
		b = strconv.AppendFloat(b, x.Float64(), 'f', prec, 64)
	case 'd', 'D':
		b = strconv.AppendInt(b, int64(x.value), 10)
	default:
		b = append(b, "%!"...)
		b = append(b, byte(verb))
		b = append(b, "(fixedpoint.Fixed="...)
		b = append(b, x.String()...)
		b = append(b, ')')
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(b) {
		pad := make([]byte, w-len(b))
		for i := range pad {
			pad[i] = ' '
		}
		if state.Flag('-') {
			b = append(b, pad...)
		} else {
			b = append(pad, b...)
		}
	}

	//nolint:errcheck
	state.Write(b)
}
