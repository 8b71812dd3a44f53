package bench

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// FormatLine "<N> <trial 당 평균 초>" 한 줄. 유효숫자 6자리.
func FormatLine(s *Summary) string {
	return fmt.Sprintf("%d %s", s.Size, strconv.FormatFloat(s.Mean.Seconds(), 'g', 6, 64))
}

// WriteJSON 결과를 들여쓰기 된 JSON 으로 저장
func WriteJSON(path string, s *Summary) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create json report")
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s); err != nil {
		return errors.Wrap(err, "encode json report")
	}
	if err := writer.Flush(); err != nil {
		return errors.Wrap(err, "write json report")
	}
	return errors.Wrap(file.Close(), "close json report")
}

// WriteMarkdown 결과 표를 마크다운으로 저장
func WriteMarkdown(path string, s *Summary) error {
	return errors.Wrap(os.WriteFile(path, []byte(renderMarkdown(s)), 0o644), "write markdown report")
}

func renderMarkdown(s *Summary) string {
	var b strings.Builder
	b.Grow(256 + 64*len(s.Records))

	b.WriteString("# Sort benchmark results\n\n")
	fmt.Fprintf(&b, "Run: %s\n", s.RunID)
	fmt.Fprintf(&b, "Started: %s\n", s.Started.Format(time.DateTime))
	fmt.Fprintf(&b, "CPU cores: %d\n", runtime.NumCPU())
	fmt.Fprintf(&b, "GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0))

	fmt.Fprintf(&b, "## %s - %s - %d elements\n\n", s.Algorithm, s.Storage, s.Size)
	b.WriteString("| Trial | Duration | Alloc bytes | Mallocs |\n")
	b.WriteString("|-------|----------|-------------|---------|\n")
	for _, r := range s.Records {
		fmt.Fprintf(&b, "| %d | %v | %d | %d |\n", r.Index+1, r.Duration, r.AllocBytes, r.Mallocs)
	}

	b.WriteString("\n## Summary\n\n")
	b.WriteString("| Trials | Seed | Mean | Median | Min | Max | Std dev |\n")
	b.WriteString("|--------|------|------|--------|-----|-----|---------|\n")
	fmt.Fprintf(&b, "| %d | %d | %v | %v | %v | %v | %v |\n",
		s.Trials, s.Seed, s.Mean, s.Median, s.Min, s.Max, s.StdDev)
	return b.String()
}
