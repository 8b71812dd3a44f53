package quicksort

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMedianOfThreeAllPatterns 세 자리 각각 {작음, 같음, 큼} 의 27 가지 조합
func TestMedianOfThreeAllPatterns(t *testing.T) {
	values := []int{1, 2, 3}
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				sorted := []int{a, b, c}
				slices.Sort(sorted)

				got := MedianOfThree(a, b, c)
				assert.Equal(t, sorted[1], got, "MedianOfThree(%d, %d, %d)", a, b, c)
				assert.Contains(t, []int{a, b, c}, got)
			}
		}
	}
}

func TestMedianOfThreeTies(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c int
		want    int
	}{
		{"a==b below c", 4, 4, 9, 4},
		{"a==b above c", 4, 4, 1, 4},
		{"b==c below a", 9, 2, 2, 2},
		{"b==c above a", 0, 2, 2, 2},
		{"a==c below b", 3, 8, 3, 3},
		{"a==c above b", 3, -8, 3, 3},
		{"all equal", 5, 5, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MedianOfThree(tt.a, tt.b, tt.c))
		})
	}
}

func TestMedianOfThreeExtremes(t *testing.T) {
	assert.Equal(t, int64(0), MedianOfThree(int64(math.MaxInt64), 0, int64(math.MinInt64)))
	assert.Equal(t, int8(-128), MedianOfThree(int8(-128), int8(-128), int8(127)))
	assert.Equal(t, uint(7), MedianOfThree(uint(math.MaxUint), uint(0), uint(7)))
}
