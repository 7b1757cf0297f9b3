// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package roundshift_test

import (
	"errors"
	"fmt"

	"github.com/ava-labs/roundshift"
)

func ExampleShift() {
	fmt.Println(roundshift.Shift[uint8](3, 1))
	fmt.Println(roundshift.Shift[int8](-3, 1))
	fmt.Println(roundshift.Shift[int8](-4, 1))
	fmt.Println(roundshift.Shift[int8](42, 7)) // invalid for int8
	// Output:
	// 2
	// -2
	// -2
	// 0
}

func ExampleScale() {
	// 1000 * 0.7 with 0.7 approximated as 179/2^8
	fmt.Println(roundshift.Scale[int32](1000, 179, 8))
	// Output: 699
}

func ExampleTryShift() {
	_, err := roundshift.TryShift[int16](1, 15)
	fmt.Println(errors.Is(err, roundshift.ErrInvalidShift))
	fmt.Println(err)
	// Output:
	// true
	// invalid shift: 15 > 14 for int16
}

func ExampleDivisor() {
	// A constant out-of-range index, such as Int16Divisors[15], doesn't compile.
	q12 := roundshift.Int16Divisors[12]
	fmt.Println(q12.Shift(6144))     // 1.5
	fmt.Println(q12.Scale(-3, 2048)) // -1.5
	// Output:
	// 2
	// -2
}
