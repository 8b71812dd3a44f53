package quicksort

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// SortParallel Sort 와 같은 분할을 쓰되 큰 하위 구간은 고루틴에 넘긴다.
// 동시에 도는 고루틴은 workers 개로 제한되고, 자리가 없으면 호출한
// 고루틴이 직접 정렬한다. workers <= 1 이면 Sort 와 같다.
func SortParallel[T constraints.Integer](s []T, workers int) {
	if workers <= 1 || len(s) < 2 {
		sortSlice(s)
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	sortParallel(&g, s, parallelCutoff(len(s)))
	// 클로저는 항상 nil 을 돌려준다
	g.Wait()
}

func sortParallel[T constraints.Integer](g *errgroup.Group, s []T, cutoff int) {
	if len(s) <= cutoff {
		sortSlice(s)
		return
	}

	endSmall, beginLarge := partitionByMedian(s)
	for _, sub := range [2][]T{s[:endSmall], s[beginLarge:]} {
		// 슬롯 획득 시도, 실패하면 순차 처리
		if !g.TryGo(func() error {
			sortParallel(g, sub, cutoff)
			return nil
		}) {
			sortParallel(g, sub, cutoff)
		}
	}
}

// parallelCutoff 전체 크기에 따른 순차 전환 임계값
func parallelCutoff(total int) int {
	switch {
	case total < 1000:
		return total // 작은 데이터는 병렬처리 안함
	case total < 10000:
		return 300
	case total < 100000:
		return 800
	default:
		return 1500
	}
}
