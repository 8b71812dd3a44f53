package dataset

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// ChunkSize 키 하나에 담는 값 개수
const ChunkSize = 4096

const valueWidth = 8

// trialPrefix run + '/' + trial(big endian). 배열 길이 메타 값의 키이기도 하다.
func trialPrefix(run string, trial int) []byte {
	key := make([]byte, 0, len(run)+1+4)
	key = append(key, run...)
	key = append(key, '/')
	return binary.BigEndian.AppendUint32(key, uint32(trial))
}

// chunkKey trialPrefix 뒤에 청크 번호를 붙인다
func chunkKey(prefix []byte, chunk int) []byte {
	key := make([]byte, 0, len(prefix)+4)
	key = append(key, prefix...)
	return binary.BigEndian.AppendUint32(key, uint32(chunk))
}

// prefixEnd prefix 로 시작하는 모든 키보다 큰 가장 작은 키
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

func encodeLength(n int) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(n))
}

func encodeChunk(vals []int) []byte {
	buf := make([]byte, 0, len(vals)*valueWidth)
	for _, v := range vals {
		buf = binary.BigEndian.AppendUint64(buf, uint64(int64(v)))
	}
	return buf
}

// forEachChunk data 를 ChunkSize 단위로 잘라 fn 에 넘긴다
func forEachChunk(data []int, fn func(chunk int, vals []int) error) error {
	for i, c := 0, 0; i < len(data); i, c = i+ChunkSize, c+1 {
		if err := fn(c, data[i:min(i+ChunkSize, len(data))]); err != nil {
			return err
		}
	}
	return nil
}

// reader 메타 값과 청크들로부터 배열을 다시 조립한다
type reader struct {
	want int
	out  []int
}

func newReader(meta []byte) (*reader, error) {
	if len(meta) != valueWidth {
		return nil, errors.Wrapf(ErrCorrupt, "length header has %d bytes", len(meta))
	}
	n := binary.BigEndian.Uint64(meta)
	if n > uint64(int(^uint(0)>>1)) {
		return nil, errors.Wrapf(ErrCorrupt, "length %d", n)
	}
	// 헤더가 깨졌을 때 거대한 할당을 막기 위해 미리 잡는 용량은 제한
	return &reader{want: int(n), out: make([]int, 0, min(int(n), 1<<24))}, nil
}

func (r *reader) add(chunk []byte) error {
	if len(chunk)%valueWidth != 0 {
		return errors.Wrapf(ErrCorrupt, "chunk of %d bytes", len(chunk))
	}
	if len(r.out)+len(chunk)/valueWidth > r.want {
		return errors.Wrapf(ErrCorrupt, "more than %d values", r.want)
	}
	for i := 0; i < len(chunk); i += valueWidth {
		r.out = append(r.out, int(int64(binary.BigEndian.Uint64(chunk[i:]))))
	}
	return nil
}

func (r *reader) done() ([]int, error) {
	if len(r.out) != r.want {
		return nil, errors.Wrapf(ErrCorrupt, "got %d of %d values", len(r.out), r.want)
	}
	return r.out, nil
}
