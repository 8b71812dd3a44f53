package quicksort

import "golang.org/x/exp/constraints"

// MedianOfThree 세 값 중 중앙값을 돌려준다.
// 두 값 이상이 같으면 같은 값 중 하나를 돌려준다.
func MedianOfThree[T constraints.Integer](a, b, c T) T {
	if a < b {
		switch {
		case b < c:
			return b // a < b < c
		case a < c:
			return c // a < c <= b
		default:
			return a // c <= a < b
		}
	}
	switch {
	case a < c:
		return a // b <= a < c
	case b < c:
		return c // b < c <= a
	default:
		return b // c <= b <= a
	}
}
