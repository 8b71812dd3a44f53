// Package dataset 는 벤치마크 입력 배열을 저장하고 다시 읽어 오는 저장소들이다.
// 같은 배열을 메모리, 텍스트 파일, bbolt, BadgerDB, PebbleDB 중 하나에
// 거쳐서 정렬기로 넘길 수 있다.
package dataset

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrNotFound 해당 trial 의 배열이 저장되어 있지 않음
	ErrNotFound = errors.New("dataset: trial not found")
	// ErrCorrupt 저장된 값의 형식이 깨짐
	ErrCorrupt = errors.New("dataset: corrupt entry")
	// ErrUnknownKind 지원하지 않는 저장소 종류
	ErrUnknownKind = errors.New("dataset: unknown storage kind")
)

// 저장소 종류
const (
	KindMemory = "memory"
	KindFile   = "file"
	KindBbolt  = "bbolt"
	KindBadger = "badger"
	KindPebble = "pebble"
)

// Kinds 지원하는 저장소 종류 목록
func Kinds() []string {
	return []string{KindMemory, KindFile, KindBbolt, KindBadger, KindPebble}
}

// Store trial 번호별 정수 배열 저장소.
// 한 번의 실행(run) 안에서만 쓰고 동시에 여러 고루틴에서 부르지 않는다.
type Store interface {
	// Put 배열을 trial 번호로 저장한다. 같은 번호는 덮어쓴다.
	Put(trial int, data []int) error
	// Load 저장된 배열의 새 복사본을 돌려준다.
	Load(trial int) ([]int, error)
	Close() error
}

// Open kind 에 맞는 저장소를 연다. 파일 기반 저장소는 dir 아래에 만들고,
// 키는 run 으로 구분하므로 여러 실행이 같은 dir 을 공유할 수 있다.
func Open(kind, dir, run string) (Store, error) {
	switch kind {
	case KindMemory:
		return NewMemory(), nil
	case KindFile:
		return asStore(openFile(dir, run))
	case KindBbolt:
		return asStore(openBolt(dir, run))
	case KindBadger:
		return asStore(openBadger(dir, run))
	case KindPebble:
		return asStore(openPebble(dir, run))
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
}

// asStore 실패 시 typed nil 대신 nil 인터페이스를 돌려준다
func asStore[S Store](s S, err error) (Store, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
