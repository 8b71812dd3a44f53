package quicksort

import (
	"math/rand/v2"
	"runtime"
	"slices"
	"testing"
)

// generateInts 벤치마크용 랜덤 데이터 (값 범위 0..1000*n, 원래 하네스와 동일)
func generateInts(n, spread int) []int {
	rng := rand.New(rand.NewPCG(42, 0))
	data := make([]int, n)
	for i := range data {
		data[i] = rng.IntN(spread)
	}
	return data
}

func benchmarkSort(b *testing.B, n, spread int, sortFn func([]int)) {
	ref := generateInts(n, spread)
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		sortFn(data)
	}
}

func stdSort(s []int)      { slices.Sort(s) }
func parallelSort(s []int) { SortParallel(s, runtime.NumCPU()) }

func BenchmarkSort_1000(b *testing.B)   { benchmarkSort(b, 1000, 1000*1000, Sort[int]) }
func BenchmarkSort_100000(b *testing.B) { benchmarkSort(b, 100000, 1000*100000, Sort[int]) }

func BenchmarkSortIterative_100000(b *testing.B) {
	benchmarkSort(b, 100000, 1000*100000, SortIterative[int])
}

func BenchmarkSortParallel_1000000(b *testing.B) {
	benchmarkSort(b, 1000000, 1000*1000000, parallelSort)
}

// 중복이 많은 입력 (서로 다른 값 3개)
func BenchmarkSort_FewDistinct_100000(b *testing.B) { benchmarkSort(b, 100000, 3, Sort[int]) }

func BenchmarkStdlib_1000(b *testing.B)   { benchmarkSort(b, 1000, 1000*1000, stdSort) }
func BenchmarkStdlib_100000(b *testing.B) { benchmarkSort(b, 100000, 1000*100000, stdSort) }

func BenchmarkStdlib_FewDistinct_100000(b *testing.B) { benchmarkSort(b, 100000, 3, stdSort) }
