package dataset

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// fileStore trial 마다 텍스트 파일 하나 (한 줄에 정수 하나)
type fileStore struct {
	dir string
}

func openFile(dir, run string) (*fileStore, error) {
	runDir := filepath.Join(dir, run)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create dataset dir %s", runDir)
	}
	return &fileStore{dir: runDir}, nil
}

func (s *fileStore) path(trial int) string {
	return filepath.Join(s.dir, fmt.Sprintf("trial-%06d.txt", trial))
}

// Put 버퍼링된 파일 쓰기 (64KB 버퍼)
func (s *fileStore) Put(trial int, data []int) error {
	file, err := os.Create(s.path(trial))
	if err != nil {
		return errors.Wrap(err, "create dataset file")
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 64*1024)
	var buf []byte
	for i, num := range data {
		buf = buf[:0]
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = strconv.AppendInt(buf, int64(num), 10)
		if _, err := writer.Write(buf); err != nil {
			return errors.Wrap(err, "write dataset file")
		}
	}
	if err := writer.Flush(); err != nil {
		return errors.Wrap(err, "flush dataset file")
	}
	return errors.Wrap(file.Close(), "close dataset file")
}

func (s *fileStore) Load(trial int) ([]int, error) {
	file, err := os.Open(s.path(trial))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(ErrNotFound, "trial %d", trial)
	}
	if err != nil {
		return nil, errors.Wrap(err, "open dataset file")
	}
	defer file.Close()

	// 파일 크기 기반으로 슬라이스 미리 할당
	fileInfo, err := file.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "stat dataset file")
	}
	data := make([]int, 0, int(fileInfo.Size()/7))

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), bufio.MaxScanTokenSize)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		num, err := strconv.Atoi(text)
		if err != nil {
			return nil, errors.Wrapf(errors.Mark(err, ErrCorrupt), "%s:%d", s.path(trial), line)
		}
		data = append(data, num)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read dataset file")
	}
	return data, nil
}

func (s *fileStore) Close() error { return nil }
