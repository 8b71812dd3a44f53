package bench

import (
	"maps"
	"runtime"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/rlaau/qsbench/quicksort"
)

// SortFunc 슬라이스를 제자리 정렬하는 함수
type SortFunc func([]int)

var algorithms = map[string]SortFunc{
	"quicksort":           quicksort.Sort[int],
	"quicksort-iterative": quicksort.SortIterative[int],
	"parallel-quicksort": func(s []int) {
		quicksort.SortParallel(s, runtime.NumCPU())
	},
	"mergesort": mergeSort[int],
	"parallel-mergesort": func(s []int) {
		parallelMergeSort(s, runtime.NumCPU())
	},
	// 비교 기준 라이브러리 정렬
	"qsort": func(s []int) {
		slices.Sort(s)
	},
}

// Lookup 이름으로 정렬 함수를 찾는다
func Lookup(name string) (SortFunc, error) {
	fn, ok := algorithms[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
	}
	return fn, nil
}

// Algorithms 등록된 알고리즘 이름 (정렬됨)
func Algorithms() []string {
	return slices.Sorted(maps.Keys(algorithms))
}
