package bench

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownAlgorithm 등록되지 않은 정렬 알고리즘 이름
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	// ErrInvalidConfig 설정 검증 실패
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrUnsorted 검증 모드에서 정렬 결과가 오름차순이 아님
	ErrUnsorted = errors.New("sort produced unsorted output")
)
