package quicksort

import "golang.org/x/exp/constraints"

// Sort s 를 오름차순으로 제자리 정렬한다.
func Sort[T constraints.Integer](s []T) {
	sortSlice(s)
}

// sortSlice 재귀 드라이버.
// 두 하위 구간 모두 key 와 같은 값(최소 1개)을 빼므로 항상 줄어든다.
func sortSlice[T constraints.Integer](s []T) {
	if sortTiny(s) {
		return
	}
	endSmall, beginLarge := partitionByMedian(s)
	sortSlice(s[:endSmall])
	sortSlice(s[beginLarge:])
}
