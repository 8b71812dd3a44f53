package bench

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLine(t *testing.T) {
	tests := []struct {
		mean time.Duration
		want string
	}{
		{1500 * time.Microsecond, "100 0.0015"},
		{15 * time.Microsecond, "100 1.5e-05"},
		{2 * time.Second, "100 2"},
		{1234567 * time.Microsecond, "100 1.23457"},
		{0, "100 0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLine(&Summary{Size: 100, Mean: tt.mean}))
	}
}

func sampleSummary() *Summary {
	s := &Summary{
		RunID:     "8f1c2d9e-0000-4000-8000-000000000000",
		Algorithm: "quicksort",
		Storage:   "memory",
		Size:      1000,
		Seed:      42,
		Started:   time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
		Records: []Trial{
			{Index: 0, Duration: 120 * time.Microsecond},
			{Index: 1, Duration: 80 * time.Microsecond},
		},
	}
	s.summarize()
	return s
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, WriteJSON(path, sampleSummary()))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Summary
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, 100*time.Microsecond, got.Mean)
	assert.Len(t, got.Records, 2)
	assert.Contains(t, string(body), "\n  \"run_id\"")
}

func TestWriteMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.md")
	require.NoError(t, WriteMarkdown(path, sampleSummary()))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	md := string(body)
	assert.Contains(t, md, "## quicksort - memory - 1000 elements")
	assert.Contains(t, md, "| 1 | 120µs | 0 | 0 |")
	assert.Contains(t, md, "| 2 | 42 | 100µs | 100µs | 80µs | 120µs | 20µs |")
}
