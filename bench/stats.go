package bench

import (
	"math"
	"runtime"
	"slices"
	"time"
)

// Trial 한 번의 정렬 측정값
type Trial struct {
	Index      int           `json:"index"`
	Duration   time.Duration `json:"duration"`
	AllocBytes uint64        `json:"alloc_bytes,omitempty"`
	Mallocs    uint64        `json:"mallocs,omitempty"`
}

// Summary 실행 전체 결과
type Summary struct {
	RunID     string        `json:"run_id"`
	Algorithm string        `json:"algorithm"`
	Storage   string        `json:"storage"`
	Size      int           `json:"size"`
	Trials    int           `json:"trials"`
	Seed      uint64        `json:"seed"`
	Started   time.Time     `json:"started"`
	Mean      time.Duration `json:"mean"`
	Median    time.Duration `json:"median"`
	Min       time.Duration `json:"min"`
	Max       time.Duration `json:"max"`
	StdDev    time.Duration `json:"stddev"`
	Records   []Trial       `json:"records"`
}

// summarize Records 로부터 통계 필드를 채운다
func (s *Summary) summarize() {
	n := len(s.Records)
	s.Trials = n
	if n == 0 {
		return
	}

	durations := make([]time.Duration, n)
	var total time.Duration
	for i, r := range s.Records {
		durations[i] = r.Duration
		total += r.Duration
	}
	slices.Sort(durations)

	s.Min = durations[0]
	s.Max = durations[n-1]
	s.Mean = total / time.Duration(n)
	if n%2 == 1 {
		s.Median = durations[n/2]
	} else {
		s.Median = (durations[n/2-1] + durations[n/2]) / 2
	}

	var sq float64
	for _, d := range durations {
		diff := float64(d - s.Mean)
		sq += diff * diff
	}
	s.StdDev = time.Duration(math.Sqrt(sq / float64(n)))
}

// memSample 정렬 구간의 힙 할당량 측정
type memSample struct {
	before runtime.MemStats
}

// startMemSample GC 로 정리한 뒤 시작 시점 통계를 읽는다
func startMemSample() *memSample {
	runtime.GC()
	s := &memSample{}
	runtime.ReadMemStats(&s.before)
	return s
}

func (s *memSample) stop() (allocBytes, mallocs uint64) {
	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	return after.TotalAlloc - s.before.TotalAlloc, after.Mallocs - s.before.Mallocs
}
