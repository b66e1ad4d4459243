package fixedpoint_test

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
	"github.com/govalues/fixedpoint"
)

// In this example, prices kept in integer cents are added without ever
// leaving integer arithmetic.
func Example_minorUnits() {
	price := fixedpoint.NewDecimal64(1999, -2)
	tax := fixedpoint.NewDecimal64(165, -2)

	total, err := price.AddExact(tax)
	if err != nil {
		panic(err)
	}

	fmt.Println(total)
	fmt.Println(total.Value(), "cents")
	// Output:
	// 21.64
	// 2164 cents
}

// In this example, a bond price quoted in 1/32nds of a point moves up by
// three ticks.
// A binary radix keeps every tick exact.
func Example_bondTicks() {
	price := fixedpoint.NewBinary64(3184, -5)
	fmt.Println(price)

	tick := price.ULP()
	for i := 0; i < 3; i++ {
		price = price.Add(tick)
	}
	fmt.Println(price)
	// Output:
	// 99.5
	// 99.59375
}

// In this example, decimal strings are accumulated into a 32-bit
// fixed-point total and the result is handed back to the decimal package
// for formatting.
func Example_decimalBridge() {
	total := fixedpoint.NewDecimal32(0, -2)

	for _, s := range []string{"12.50", "0.99", "5.01"} {
		f, err := fixedpoint.NewFromDecimal[int32](decimal.MustParse(s))
		if err != nil {
			panic(err)
		}
		total, err = total.AddExact(f)
		if err != nil {
			panic(err)
		}
	}

	d, err := fixedpoint.ToDecimal(total)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 18.50
}

func ExampleNew() {
	a := fixedpoint.New[int64, fixedpoint.Base10](12345, -2)
	b := fixedpoint.New[int64, fixedpoint.Base10](1, 2)
	fmt.Println(a)
	fmt.Println(b)
	// Output:
	// 123.45
	// 100
}

func ExampleNewDecimal32() {
	a := fixedpoint.NewDecimal32(1, 2)
	fmt.Println(a)
	// Output: 100
}

func ExampleNewDecimal64() {
	a := fixedpoint.NewDecimal64(12345, -2)
	fmt.Println(a)
	// Output: 123.45
}

func ExampleNewBinary32() {
	a := fixedpoint.NewBinary32(9, -2)
	fmt.Println(a)
	// Output: 2.25
}

func ExampleNewBinary64() {
	a := fixedpoint.NewBinary64(3, -1)
	fmt.Println(a)
	// Output: 1.5
}

func ExampleNewFromScaled() {
	si := fixedpoint.Scaled[int64]{Value: 12845, Scale: -2}
	a := fixedpoint.NewFromScaled[int64, fixedpoint.Base10](si)
	fmt.Println(a)
	// Output: 128.45
}

func ExampleNewFromNumeric() {
	a := fixedpoint.NewFromNumeric[int64, fixedpoint.Base10](123.45, -2)
	b := fixedpoint.NewFromNumeric[int64, fixedpoint.Base10](12345, 2)
	fmt.Println(a.Value())
	fmt.Println(b.Value())
	// Output:
	// 12345
	// 123
}

func ExampleNewFromInt64() {
	a, err := fixedpoint.NewFromInt64[int64, fixedpoint.Base10](123, -2)
	fmt.Println(a, err)
	fmt.Println(a.Scaled())
	// Output:
	// 123 <nil>
	// {12300 -2}
}

func ExampleMustNewFromInt64() {
	a := fixedpoint.MustNewFromInt64[int64, fixedpoint.Base10](5, -2)
	fmt.Println(a.Value(), a.Scale())
	// Output: 500 -2
}

func ExampleNewFromFloat64() {
	a, err := fixedpoint.NewFromFloat64[int64, fixedpoint.Base10](123.45, -2)
	fmt.Println(a, err)
	// Output: 123.45 <nil>
}

func ExampleMustNewFromFloat64() {
	a := fixedpoint.MustNewFromFloat64[int64, fixedpoint.Base2](1.5, -1)
	fmt.Println(a.Value(), a.Scale())
	// Output: 3 -1
}

func ExampleAs() {
	a := fixedpoint.NewDecimal64(12845, -2)
	fmt.Println(fixedpoint.As[float64](a))
	fmt.Println(fixedpoint.As[int64](a))
	// Output:
	// 128.45
	// 128
}

func ExampleFixed_Value() {
	a := fixedpoint.NewDecimal64(12845, -2)
	fmt.Println(a.Value())
	// Output: 12845
}

func ExampleFixed_Scale() {
	a := fixedpoint.NewDecimal64(12845, -2)
	fmt.Println(a.Scale())
	// Output: -2
}

func ExampleFixed_Scaled() {
	a := fixedpoint.NewDecimal64(12845, -2)
	fmt.Println(a.Scaled())
	// Output: {12845 -2}
}

func ExampleFixed_Radix() {
	fmt.Println(fixedpoint.NewDecimal64(1, 0).Radix())
	fmt.Println(fixedpoint.NewBinary64(1, 0).Radix())
	// Output:
	// 10
	// 2
}

func ExampleFixed_Float64() {
	a := fixedpoint.NewBinary64(9, -2)
	fmt.Println(a.Float64())
	// Output: 2.25
}

func ExampleFixed_Sign() {
	fmt.Println(fixedpoint.NewDecimal64(-5, 0).Sign())
	fmt.Println(fixedpoint.NewDecimal64(0, 0).Sign())
	fmt.Println(fixedpoint.NewDecimal64(5, 0).Sign())
	// Output:
	// -1
	// 0
	// 1
}

func ExampleFixed_IsNeg() {
	fmt.Println(fixedpoint.NewDecimal64(-5, 0).IsNeg())
	fmt.Println(fixedpoint.NewDecimal64(5, 0).IsNeg())
	// Output:
	// true
	// false
}

func ExampleFixed_IsPos() {
	fmt.Println(fixedpoint.NewDecimal64(5, 0).IsPos())
	fmt.Println(fixedpoint.NewDecimal64(-5, 0).IsPos())
	// Output:
	// true
	// false
}

func ExampleFixed_IsZero() {
	fmt.Println(fixedpoint.NewDecimal64(0, 3).IsZero())
	fmt.Println(fixedpoint.NewDecimal64(5, 0).IsZero())
	// Output:
	// true
	// false
}

func ExampleFixed_Abs() {
	a := fixedpoint.NewDecimal64(-12845, -2)
	fmt.Println(a.Abs())
	// Output: 128.45
}

func ExampleFixed_Neg() {
	a := fixedpoint.NewDecimal64(12845, -2)
	fmt.Println(a.Neg())
	// Output: -128.45
}

func ExampleFixed_Zero() {
	a := fixedpoint.NewDecimal64(12845, -2)
	fmt.Println(a.Zero().Scaled())
	// Output: {0 -2}
}

func ExampleFixed_ULP() {
	a := fixedpoint.NewDecimal64(12845, -2)
	fmt.Println(a.ULP())
	// Output: 0.01
}

func ExampleFixed_Inc() {
	a := fixedpoint.NewDecimal64(12845, -2)
	fmt.Println(a.Inc())
	// Output: 128.46
}

func ExampleFixed_Dec() {
	a := fixedpoint.NewDecimal64(12845, -2)
	fmt.Println(a.Dec())
	// Output: 128.44
}

func ExampleFixed_Add() {
	x := fixedpoint.NewDecimal64(12345, -2)
	y := fixedpoint.NewDecimal64(5, 0)
	fmt.Println(x.Add(y))
	// Output: 128.45
}

func ExampleFixed_AddExact() {
	x := fixedpoint.NewDecimal64(12345, -2)
	y := fixedpoint.NewDecimal64(5, 0)
	fmt.Println(x.AddExact(y))
	// Output: 128.45 <nil>
}

func ExampleFixed_Sub() {
	x := fixedpoint.NewDecimal64(12345, -2)
	y := fixedpoint.NewDecimal64(5, 0)
	fmt.Println(x.Sub(y))
	// Output: 118.45
}

func ExampleFixed_SubExact() {
	x := fixedpoint.NewDecimal64(12345, -2)
	y := fixedpoint.NewDecimal64(5, 0)
	fmt.Println(x.SubExact(y))
	// Output: 118.45 <nil>
}

func ExampleFixed_Mul() {
	x := fixedpoint.NewBinary64(3, -1)
	fmt.Println(x.Mul(x))
	// Output: 2.25
}

func ExampleFixed_MulExact() {
	x := fixedpoint.NewDecimal64(25, -1)
	y := fixedpoint.NewDecimal64(4, 0)
	fmt.Println(x.MulExact(y))
	// Output: 10 <nil>
}

func ExampleFixed_Div() {
	x := fixedpoint.NewDecimal64(12845, -2)
	y := fixedpoint.NewDecimal64(5, 0)
	fmt.Println(x.Div(y))
	// Output: 25.69
}

func ExampleFixed_DivExact() {
	x := fixedpoint.NewDecimal64(12845, -2)
	y := fixedpoint.NewDecimal64(5, 0)
	fmt.Println(x.DivExact(y))
	fmt.Println(x.DivExact(x.Zero()))
	// Output:
	// 25.69 <nil>
	// 0 computing [128.45 / 0]: division by zero
}

func ExampleFixed_Equal() {
	x := fixedpoint.NewDecimal64(100, 0)
	y := fixedpoint.NewDecimal64(1, 2)
	fmt.Println(x.Equal(y))
	fmt.Println(x == y)
	// Output:
	// true
	// false
}

func ExampleFixed_Cmp() {
	x := fixedpoint.NewDecimal64(5, 0)
	y := fixedpoint.NewDecimal64(12845, -2)
	fmt.Println(x.Cmp(y))
	fmt.Println(y.Cmp(x))
	fmt.Println(x.Cmp(x))
	// Output:
	// -1
	// 1
	// 0
}

func ExampleFixed_Rescale() {
	a := fixedpoint.NewDecimal64(12845, -2)
	fmt.Println(a.Rescale(0).Scaled())
	fmt.Println(a.Rescale(-4).Scaled())
	// Output:
	// {128 0}
	// {1284500 -4}
}

func ExampleFixed_RescaleExact() {
	a := fixedpoint.NewDecimal64(123, 2)
	b, err := a.RescaleExact(0)
	fmt.Println(b.Value(), err)
	// Output: 12300 <nil>
}

func ExampleFixed_String() {
	a := fixedpoint.NewDecimal64(12345, -2)
	fmt.Println(a.String())
	// Output: 123.45
}

func ExampleFixed_Format() {
	a := fixedpoint.NewDecimal64(12345, -2)
	fmt.Printf("%v\n", a)
	fmt.Printf("%q\n", a)
	fmt.Printf("%.1f\n", a)
	fmt.Printf("%d\n", a)
	// Output:
	// 123.45
	// "123.45"
	// 123.5
	// 12345
}

func ExampleToDecimal() {
	a := fixedpoint.NewDecimal64(12345, -2)
	fmt.Println(fixedpoint.ToDecimal(a))
	// Output: 123.45 <nil>
}

func ExampleNewFromDecimal() {
	f, err := fixedpoint.NewFromDecimal[int64](decimal.MustParse("128.45"))
	if err != nil {
		panic(err)
	}
	fmt.Println(f.Value(), f.Scale())
	// Output: 12845 -2
}

func ExampleAddOverflows() {
	fmt.Println(fixedpoint.AddOverflows[int32](math.MaxInt32, 1))
	fmt.Println(fixedpoint.AddOverflows[int32](math.MaxInt32-1, 1))
	// Output:
	// true
	// false
}

func ExampleSubOverflows() {
	fmt.Println(fixedpoint.SubOverflows[int32](math.MinInt32, 1))
	fmt.Println(fixedpoint.SubOverflows[int32](math.MinInt32+1, 1))
	// Output:
	// true
	// false
}

func ExampleMulOverflows() {
	fmt.Println(fixedpoint.MulOverflows[int32](46341, 46341))
	fmt.Println(fixedpoint.MulOverflows[int32](46340, 46340))
	// Output:
	// true
	// false
}

func ExampleDivOverflows() {
	fmt.Println(fixedpoint.DivOverflows[int32](math.MinInt32, -1))
	fmt.Println(fixedpoint.DivOverflows[int32](math.MinInt32, 1))
	// Output:
	// true
	// false
}
