package fixedpoint

import (
	"fmt"

	"github.com/govalues/decimal"
)

// ToDecimal converts a base-10 fixed-point number to a [decimal.Decimal].
// It is the bridge to the decimal package's parsing, formatting, and
// marshaling: a number that needs to cross a text, JSON, or SQL boundary
// goes through ToDecimal.
// A positive scale is folded into the coefficient, so the number 5 held at
// scale 2 converts to the decimal 500.
//
// ToDecimal returns an error if:
//   - the scale of x, negated, is greater than [decimal.MaxScale];
//   - folding a positive scale into the coefficient overflows int64.
func ToDecimal[R Rep](x Fixed[R, Base10]) (decimal.Decimal, error) {
	d, err := toDecimal(x)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", x, err)
	}
	return d, nil
}

func toDecimal[R Rep](x Fixed[R, Base10]) (decimal.Decimal, error) {
	coef := int64(x.value)
	scale := x.scale
	// Trailing zeros
	for ; scale > 0; scale-- {
		if MulOverflows(coef, int64(10)) {
			return decimal.Decimal{}, overflowError[int64]()
		}
		coef = coef * 10
	}
	return decimal.New(coef, int(scale.Neg()))
}

// NewFromDecimal converts a [decimal.Decimal] to a base-10 fixed-point
// number.
// The decimal's coefficient becomes the significand and the negated decimal
// scale becomes the scale, so the decimal 123.45 converts to the
// significand 12345 held at scale -2.
//
// NewFromDecimal returns an error if the coefficient does not fit the
// significand type R.
func NewFromDecimal[R Rep](d decimal.Decimal) (Fixed[R, Base10], error) {
	f, err := newFromDecimal[R](d)
	if err != nil {
		return Fixed[R, Base10]{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return f, nil
}

func newFromDecimal[R Rep](d decimal.Decimal) (Fixed[R, Base10], error) {
	min, max := limits[R]()
	coef := d.Coef()
	var v R
	switch {
	case d.IsNeg() && coef == uint64(max)+1:
		v = min
	case coef > uint64(max):
		return Fixed[R, Base10]{}, overflowError[R]()
	case d.IsNeg():
		v = -R(coef)
	default:
		v = R(coef)
	}
	return New[R, Base10](v, Scale(d.Scale()).Neg()), nil
}
