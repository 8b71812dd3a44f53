package quicksort_test

import (
	"fmt"

	"github.com/rlaau/qsbench/quicksort"
)

func ExampleSort() {
	s := []int{8, 3, 5, 3, 9, 1, 3, 7}
	quicksort.Sort(s)
	fmt.Println(s)
	// Output: [1 3 3 3 5 7 8 9]
}

func ExampleMedianOfThree() {
	fmt.Println(quicksort.MedianOfThree(9, 1, 5))
	// Output: 5
}
