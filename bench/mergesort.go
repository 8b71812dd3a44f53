package bench

import (
	"sync"

	"golang.org/x/exp/constraints"
)

const (
	// 이 길이 이하 구간은 삽입정렬
	insertionCutoff = 16
	// 병렬 머지소트에서 이보다 작은 구간은 순차 처리
	mergeParallelCutoff = 2048
)

// mergeSort 안정 정렬. 보조 버퍼 하나를 재귀 전체가 나눠 쓴다
func mergeSort[T constraints.Integer](s []T) {
	if len(s) < 2 {
		return
	}
	mergeSortInto(s, make([]T, len(s)))
}

// mergeSortInto buf 는 s 와 길이가 같은 작업 공간
func mergeSortInto[T constraints.Integer](s, buf []T) {
	if len(s) <= insertionCutoff {
		insertionSort(s)
		return
	}
	mid := len(s) / 2
	mergeSortInto(s[:mid], buf[:mid])
	mergeSortInto(s[mid:], buf[mid:])
	mergeHalves(s, mid, buf)
}

// mergeHalves 정렬된 s[:mid] 와 s[mid:] 를 s 안에서 합친다.
// 왼쪽 절반만 buf 로 옮기므로 쓰기 위치는 아직 안 읽은 오른쪽 원소를 넘지 않는다.
func mergeHalves[T constraints.Integer](s []T, mid int, buf []T) {
	if s[mid-1] <= s[mid] {
		return
	}
	left := buf[:mid]
	copy(left, s[:mid])

	i, j, k := 0, mid, 0
	for i < len(left) && j < len(s) {
		if left[i] <= s[j] {
			s[k] = left[i]
			i++
		} else {
			s[k] = s[j]
			j++
		}
		k++
	}
	// 오른쪽 나머지는 이미 제자리
	copy(s[k:], left[i:])
}

func insertionSort[T constraints.Integer](s []T) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i
		for ; j > 0 && s[j-1] > v; j-- {
			s[j] = s[j-1]
		}
		s[j] = v
	}
}

// workerSlots 채널 세마포로 만든 워커 자리
type workerSlots chan struct{}

func (w workerSlots) tryAcquire() bool {
	select {
	case w <- struct{}{}:
		return true
	default:
		return false
	}
}

func (w workerSlots) release() { <-w }

// parallelMergeSort 왼쪽 절반은 자리가 있으면 고루틴으로, 없으면 순차로.
// 두 절반은 buf 의 겹치지 않는 구간을 쓴다.
func parallelMergeSort[T constraints.Integer](s []T, workers int) {
	if workers <= 1 || len(s) <= mergeParallelCutoff {
		mergeSort(s)
		return
	}
	parallelMergeSortInto(s, make([]T, len(s)), make(workerSlots, workers))
}

func parallelMergeSortInto[T constraints.Integer](s, buf []T, slots workerSlots) {
	if len(s) <= mergeParallelCutoff {
		mergeSortInto(s, buf)
		return
	}

	mid := len(s) / 2
	var wg sync.WaitGroup
	if slots.tryAcquire() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer slots.release()
			parallelMergeSortInto(s[:mid], buf[:mid], slots)
		}()
	} else {
		parallelMergeSortInto(s[:mid], buf[:mid], slots)
	}
	parallelMergeSortInto(s[mid:], buf[mid:], slots)

	wg.Wait()
	mergeHalves(s, mid, buf)
}
