package quicksort

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkBands 분할 결과가 세 덩어리 조건을 만족하는지 확인
func checkBands(t *testing.T, s []int, key, endSmall, beginLarge int) {
	t.Helper()
	require.LessOrEqual(t, 0, endSmall)
	require.LessOrEqual(t, endSmall, beginLarge)
	require.LessOrEqual(t, beginLarge, len(s))
	for i, v := range s {
		switch {
		case i < endSmall:
			require.Less(t, v, key, "s[%d] in small band: %v", i, s)
		case i < beginLarge:
			require.Equal(t, key, v, "s[%d] in equal band: %v", i, s)
		default:
			require.Greater(t, v, key, "s[%d] in large band: %v", i, s)
		}
	}
}

func TestPartition3WayExamples(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		key   int
	}{
		{"empty", []int{}, 3},
		{"single equal", []int{3}, 3},
		{"all equal", []int{3, 3, 3, 3}, 3},
		{"all less", []int{1, 0, 2}, 3},
		{"all greater", []int{9, 7, 8}, 3},
		{"scenario", []int{8, 3, 5, 3, 9, 1, 3, 7}, 5},
		{"duplicate key", []int{8, 3, 5, 3, 9, 1, 3, 7}, 3},
		{"key absent", []int{8, 3, 5, 3, 9, 1, 3, 7}, 4},
		{"reverse", []int{5, 4, 3, 2, 1}, 3},
		{"greater then less", []int{9, 1}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := slices.Clone(tt.input)
			endSmall, beginLarge := Partition3Way(s, tt.key)
			checkBands(t, s, tt.key, endSmall, beginLarge)

			want := slices.Clone(tt.input)
			slices.Sort(want)
			got := slices.Clone(s)
			slices.Sort(got)
			require.Equal(t, want, got, "partition must be a permutation")
		})
	}
}

func TestPartition3WayRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for iter := 0; iter < 500; iter++ {
		n := rng.IntN(64)
		s := make([]int, n)
		for i := range s {
			s[i] = rng.IntN(10)
		}
		before := slices.Clone(s)
		key := rng.IntN(12) - 1

		endSmall, beginLarge := Partition3Way(s, key)
		checkBands(t, s, key, endSmall, beginLarge)

		slices.Sort(before)
		after := slices.Clone(s)
		slices.Sort(after)
		require.Equal(t, before, after)
	}
}

func TestPartitionByMedianKeepsEqualBand(t *testing.T) {
	s := []int{2, 9, 4, 4, 1, 4, 7}
	endSmall, beginLarge := partitionByMedian(s)
	// 중앙값은 구간 안의 값이므로 가운데 덩어리는 비어 있지 않다
	require.Less(t, endSmall, beginLarge)
}
