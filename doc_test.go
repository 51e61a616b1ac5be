package intdiv_test

import (
	"fmt"

	"github.com/govalues/intdiv"
)

// In this example 60 units are split into three equal shares and each share
// is divided by 3, first naively and then through a divider that carries the
// rounding error forward.
// Only the carried version sums back to 60 / 3 = 20.
func Example_apportionment() {
	shares := []int64{20, 20, 20}

	var naive int64
	for _, share := range shares {
		quo, _ := intdiv.MustDivide(share, 3, intdiv.NearestTiesAwayFromZero)
		naive += quo
	}

	d, err := intdiv.NewDivider(int64(3), intdiv.NearestTiesAwayFromZero)
	if err != nil {
		panic(err)
	}
	var carried int64
	for _, share := range shares {
		carried += d.MustStep(share)
	}

	fmt.Println(naive, carried)
	// Output: 21 20
}

func ExampleDivide() {
	fmt.Println(intdiv.Divide(int64(20), 3, intdiv.Floor))
	fmt.Println(intdiv.Divide(int64(-20), 3, intdiv.Floor))
	fmt.Println(intdiv.Divide(int64(20), 3, intdiv.Ceiling))
	fmt.Println(intdiv.Divide(int64(20), 3, intdiv.NearestTiesAwayFromZero))
	// Output:
	// 6 2 <nil>
	// -7 1 <nil>
	// 7 -1 <nil>
	// 7 -1 <nil>
}

func ExampleDivide_ties() {
	fmt.Println(intdiv.Divide(int64(10), 4, intdiv.NearestTiesAwayFromZero))
	fmt.Println(intdiv.Divide(int64(10), 4, intdiv.NearestTiesToEven))
	// Output:
	// 3 -2 <nil>
	// 2 2 <nil>
}

func ExampleMustDivide() {
	quo, rem := intdiv.MustDivide(int64(-7), 2, intdiv.Trunc)
	fmt.Println(quo, rem)
	// Output: -3 -1
}

func ExampleNewDivider() {
	d, err := intdiv.NewDivider(int64(3), intdiv.NearestTiesAwayFromZero)
	if err != nil {
		panic(err)
	}
	fmt.Println(d.Divisor(), d.Rounding(), d.Carry())
	// Output: 3 nearest-away 0
}

func ExampleDivider_Step() {
	d, err := intdiv.NewDivider(int64(3), intdiv.NearestTiesAwayFromZero)
	if err != nil {
		panic(err)
	}
	fmt.Println(d.Step(20))
	fmt.Println(d.Step(20))
	fmt.Println(d.Step(20))
	// Output:
	// 7 <nil>
	// 6 <nil>
	// 7 <nil>
}

func ExampleDivider_Carry() {
	d, err := intdiv.NewDivider(int64(3), intdiv.Floor)
	if err != nil {
		panic(err)
	}
	d.MustStep(20)
	fmt.Println(d.Carry())
	// Output: 2
}

func ExampleDivider_Reset() {
	d, err := intdiv.NewDivider(int64(3), intdiv.Ceiling)
	if err != nil {
		panic(err)
	}
	fmt.Println(d.MustStep(20))
	d.Reset()
	fmt.Println(d.MustStep(20))
	// Output:
	// 7
	// 7
}

func ExampleParseRounding() {
	r, err := intdiv.ParseRounding("nearest-even")
	if err != nil {
		panic(err)
	}
	fmt.Println(r == intdiv.NearestTiesToEven)
	// Output: true
}

func ExampleRounding_String() {
	fmt.Println(intdiv.Trunc, intdiv.Floor, intdiv.Ceiling, intdiv.NearestTiesAwayFromZero, intdiv.NearestTiesToEven)
	// Output: trunc floor ceiling nearest-away nearest-even
}
