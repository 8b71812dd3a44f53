package bench

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsObserve(t *testing.T) {
	m := NewMetrics()
	m.Observe("quicksort", "memory", 3*time.Millisecond)
	m.Observe("quicksort", "memory", 5*time.Millisecond)
	m.Observe("qsort", "file", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.trials.WithLabelValues("quicksort", "memory")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.trials.WithLabelValues("qsort", "file")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestMetricsWriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.Observe("quicksort", "memory", time.Millisecond)

	path := filepath.Join(t.TempDir(), "qsbench.prom")
	require.NoError(t, m.WriteTextfile(path))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), `qsbench_trials_total{algorithm="quicksort",storage="memory"} 1`)
	assert.Contains(t, string(body), "qsbench_sort_duration_seconds_bucket")
}
