package fixedpoint

import (
	"fmt"
	"unsafe"
)

// limits returns the smallest and the largest value representable by the
// significand type R.
func limits[R Rep]() (min, max R) {
	var z R
	bits := unsafe.Sizeof(z) * 8
	max = R(1)<<(bits-2) - 1 + R(1)<<(bits-2)
	min = -max - 1
	return min, max
}

// repName returns the name of the significand type R for diagnostics.
func repName[R Rep]() string {
	var z R
	switch any(z).(type) {
	case int32:
		return "int32"
	case int64:
		return "int64"
	default:
		return fmt.Sprintf("%T", z)
	}
}

// overflowError returns [ErrOverflow] annotated with the name of the
// significand type R, so a reported overflow names the offending width.
func overflowError[R Rep]() error {
	return fmt.Errorf("%s %w", repName[R](), ErrOverflow)
}

// AddOverflows reports whether x + y overflows the range of R.
func AddOverflows[R Rep](x, y R) bool {
	min, max := limits[R]()
	if y > 0 {
		return x > max-y
	}
	return x < min-y
}

// SubOverflows reports whether x - y overflows the range of R.
func SubOverflows[R Rep](x, y R) bool {
	min, max := limits[R]()
	if y > 0 {
		return x < min+y
	}
	return x > max+y
}

// MulOverflows reports whether x * y overflows the range of R.
func MulOverflows[R Rep](x, y R) bool {
	min, max := limits[R]()
	if y > 0 {
		return x > max/y || x < min/y
	}
	if y < -1 {
		return x > min/y || x < max/y
	}
	return y == -1 && x == min
}

// DivOverflows reports whether x / y overflows the range of R, which happens
// only when x is the minimum value of R and y is -1.
// A zero divisor is not an overflow; see [Fixed.DivExact].
func DivOverflows[R Rep](x, y R) bool {
	min, _ := limits[R]()
	return x == min && y == -1
}
