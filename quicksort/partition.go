package quicksort

import "golang.org/x/exp/constraints"

// Partition3Way s 를 key 기준으로 제자리에서 세 덩어리로 나눈다.
// 반환값 (endSmall, beginLarge) 에 대해
//   - s[:endSmall] < key
//   - s[endSmall:beginLarge] == key
//   - s[beginLarge:] > key
//
// key 가 s 에 없으면 가운데 덩어리는 비어 있다.
func Partition3Way[T constraints.Integer](s []T, key T) (int, int) {
	endSmall, beginLarge := 0, len(s)

	for endSmall < beginLarge && s[endSmall] < key {
		endSmall++
	}
	endEqual := endSmall
	for endEqual < beginLarge && s[endEqual] == key {
		endEqual++
	}
	for endEqual < beginLarge && s[beginLarge-1] > key {
		beginLarge--
	}

	for endEqual < beginLarge {
		// [0, endSmall) < key, [endSmall, endEqual) == key,
		// [beginLarge, n) > key, [endEqual, beginLarge) 미확인.
		// s[endEqual] != key, s[beginLarge-1] <= key.
		if s[endEqual] < key {
			s[endEqual], s[endSmall] = s[endSmall], s[endEqual]
			endSmall++
			endEqual++
		} else {
			s[endEqual], s[beginLarge-1] = s[beginLarge-1], s[endEqual]
			// 큰 값 구간을 가능한 만큼 넓힌다
			for endEqual < beginLarge && s[beginLarge-1] > key {
				beginLarge--
			}
		}
		for endEqual < beginLarge && s[endEqual] == key {
			endEqual++
		}
	}

	return endSmall, beginLarge
}

// partitionByMedian 중앙값 피벗으로 s 를 나눈다. len(s) > 2 여야 한다.
func partitionByMedian[T constraints.Integer](s []T) (int, int) {
	n := len(s)
	key := MedianOfThree(s[0], s[n/2], s[n-1])
	return Partition3Way(s, key)
}

// sortTiny 길이 2 이하 구간 처리. 처리했으면 true.
func sortTiny[T constraints.Integer](s []T) bool {
	switch len(s) {
	case 0, 1:
		return true
	case 2:
		if s[0] > s[1] {
			s[0], s[1] = s[1], s[0]
		}
		return true
	}
	return false
}
