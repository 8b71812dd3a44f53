package bench

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithmsSort(t *testing.T) {
	gen := NewGenerator(42, 10000, DefaultValueScale)
	for _, name := range Algorithms() {
		t.Run(name, func(t *testing.T) {
			sortFn, err := Lookup(name)
			require.NoError(t, err)

			for _, n := range []int{0, 1, 2, 17, 1000, 10000} {
				data := make([]int, n)
				gen.Fill(data)
				want := slices.Clone(data)
				slices.Sort(want)

				sortFn(data)
				require.Equal(t, want, data, "n=%d", n)
			}

			scenario := []int{8, 3, 5, 3, 9, 1, 3, 7}
			sortFn(scenario)
			assert.Equal(t, []int{1, 3, 3, 3, 5, 7, 8, 9}, scenario)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("bogosort")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}

func TestAlgorithmsListed(t *testing.T) {
	names := Algorithms()
	assert.True(t, slices.IsSorted(names))
	assert.Contains(t, names, "quicksort")
	assert.Contains(t, names, "qsort")
}

func TestParallelMergeSortSingleWorker(t *testing.T) {
	data := []int{5, 1, 4, 1}
	parallelMergeSort(data, 1)
	assert.Equal(t, []int{1, 1, 4, 5}, data)
}

func TestInsertionSortSubslice(t *testing.T) {
	data := []int{9, 4, 3, 2, 0}
	insertionSort(data[1:4])
	assert.Equal(t, []int{9, 2, 3, 4, 0}, data)
}

func TestMergeHalves(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		mid  int
		want []int
	}{
		{"interleaved", []int{1, 4, 7, 2, 3, 9}, 3, []int{1, 2, 3, 4, 7, 9}},
		{"already ordered", []int{1, 2, 3, 4}, 2, []int{1, 2, 3, 4}},
		{"right before left", []int{5, 6, 7, 1, 2}, 3, []int{1, 2, 5, 6, 7}},
		{"ties", []int{2, 2, 3, 2, 2}, 3, []int{2, 2, 2, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := slices.Clone(tt.in)
			mergeHalves(s, tt.mid, make([]int, len(s)))
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestMergeSortsOtherIntegerTypes(t *testing.T) {
	data := make([]int16, 5000)
	for i := range data {
		data[i] = int16((i*7919)%2003 - 1000)
	}
	want := slices.Clone(data)
	slices.Sort(want)

	seq := slices.Clone(data)
	mergeSort(seq)
	assert.Equal(t, want, seq)

	par := slices.Clone(data)
	parallelMergeSort(par, 4)
	assert.Equal(t, want, par)
}
