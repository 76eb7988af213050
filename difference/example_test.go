package difference_test

import (
	"fmt"

	"github.com/katalvlaran/mirage/difference"
)

// ExampleReduce prints the reduction stack of a quadratic history.
func ExampleReduce() {
	s, err := difference.Reduce([]int64{1, 3, 6, 10, 15, 21})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("depth=%d\n", s.Depth())
	fmt.Print(s)
	// Output:
	// depth=4
	// 1 3 6 10 15 21
	//  2 3 4 5 6
	//   1 1 1 1
	//    0 0 0
}

// ExampleDifference shows the first difference of an arithmetic sequence.
func ExampleDifference() {
	d, _ := difference.Difference([]int64{0, 3, 6, 9, 12, 15})
	fmt.Println(d)
	// Output:
	// [3 3 3 3 3]
}
