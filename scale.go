package fixedpoint

// Scale is the exponent of a fixed-point number: a number with significand v
// and scale s denotes v * radix^s.
// A negative scale places digits after the radix point, a positive scale
// adds trailing zeros to the integer part.
//
// Scale is a distinct type so that a plain integer cannot be passed by
// accident where an exponent is meant.
type Scale int32

// Neg returns the scale with the opposite sign.
func (s Scale) Neg() Scale {
	return -s
}

// Base2 is the radix marker for binary numbers.
type Base2 struct{}

// Base10 is the radix marker for decimal numbers.
type Base10 struct{}

func (Base2) value() int32  { return 2 }
func (Base10) value() int32 { return 10 }

// Radix is the constraint for the base of the positional notation.
// The unexported method keeps the set closed: only [Base2] and [Base10]
// satisfy it.
type Radix interface {
	Base2 | Base10
	value() int32
}

// radix returns the base of the positional notation B.
func radix[B Radix]() int32 {
	var b B
	return b.value()
}

// isInteger reports whether the carrier type T is an integer type.
// Integer division truncates 1/2 to zero, float division does not.
func isInteger[T Numeric]() bool {
	return T(1)/T(2) == 0
}

// pow calculates radix^n in the carrier type T.
// If n is negative, the result is unpredictable.
func pow[T Numeric, B Radix](n Scale) T {
	b := T(radix[B]())
	z := T(1)
	for ; n > 0; n-- {
		z = z * b
	}
	return z
}

// rightShift calculates v / radix^s, truncating the result towards zero.
// If s is negative, the result is unpredictable.
// An integer carrier is divided one radix step at a time, since radix^s
// can exceed the carrier's range even though the truncated quotient fits.
func rightShift[T Numeric, B Radix](v T, s Scale) T {
	if isInteger[T]() {
		b := T(radix[B]())
		for ; s > 0 && v != 0; s-- {
			v = v / b
		}
		return v
	}
	return v / pow[T, B](s)
}

// leftShift calculates v * radix^(-s).
// If s is positive, the result is unpredictable.
func leftShift[T Numeric, B Radix](v T, s Scale) T {
	return v * pow[T, B](-s)
}

// shift rescales v by s positions in the carrier type T: it divides by
// radix^s when s is positive, multiplies by radix^(-s) when s is negative,
// and returns v unchanged when s is zero.
func shift[T Numeric, B Radix](v T, s Scale) T {
	switch {
	case s > 0:
		return rightShift[T, B](v, s)
	case s < 0:
		return leftShift[T, B](v, s)
	}
	return v
}

// leftShiftExact calculates v * radix^n and checks overflow.
func leftShiftExact[R Rep, B Radix](v R, n Scale) (z R, ok bool) {
	b := R(radix[B]())
	for ; n > 0 && v != 0; n-- {
		if MulOverflows(v, b) {
			return 0, false
		}
		v = v * b
	}
	return v, true
}
