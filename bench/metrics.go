package bench

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics 실행별 전용 레지스트리에 모으는 프로메테우스 지표
type Metrics struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	trials   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "qsbench_sort_duration_seconds",
			Help:    "Wall time of one sort call in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14), // 1us ~ 67s
		}, []string{"algorithm", "storage"}),
		trials: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "qsbench_trials_total",
			Help: "Total sort trials completed",
		}, []string{"algorithm", "storage"}),
	}
}

func (m *Metrics) Observe(algorithm, storage string, d time.Duration) {
	m.duration.WithLabelValues(algorithm, storage).Observe(d.Seconds())
	m.trials.WithLabelValues(algorithm, storage).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile node_exporter textfile 형식으로 저장
func (m *Metrics) WriteTextfile(path string) error {
	return errors.Wrap(prometheus.WriteToTextfile(path, m.registry), "write metrics")
}
