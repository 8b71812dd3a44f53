package quicksort

import "golang.org/x/exp/constraints"

// span 정렬 대기 중인 반열린 구간 [begin, end)
type span struct {
	begin, end int
}

// SortIterative Sort 와 같은 분할을 쓰되 재귀 대신 작업 스택을 쓴다.
// 작은 쪽 구간을 먼저 처리하므로 스택에 쌓이는 구간은 O(log N) 개다.
func SortIterative[T constraints.Integer](s []T) {
	if len(s) < 2 {
		return
	}

	stack := make([]span, 0, 64)
	stack = append(stack, span{0, len(s)})

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		sub := s[top.begin:top.end]
		if sortTiny(sub) {
			continue
		}

		endSmall, beginLarge := partitionByMedian(sub)
		left := span{top.begin, top.begin + endSmall}
		right := span{top.begin + beginLarge, top.end}

		// 큰 쪽을 먼저 넣어야 작은 쪽이 먼저 꺼내진다
		if left.end-left.begin > right.end-right.begin {
			left, right = right, left
		}
		stack = append(stack, right, left)
	}
}
