package bench

import (
	"context"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rlaau/qsbench/dataset"
)

// Runner 같은 크기의 난수 배열 M 개를 차례로 정렬하며 시간을 잰다
type Runner struct {
	cfg     Config
	sortFn  SortFunc
	gen     *Generator
	store   dataset.Store
	metrics *Metrics
	log     logrus.FieldLogger
	runID   string
}

// NewRunner 설정을 검증하고 데이터셋 저장소를 연다. 끝나면 Close 를 불러야 한다.
func NewRunner(cfg Config, log logrus.FieldLogger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sortFn, err := Lookup(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	store, err := dataset.Open(cfg.Storage, cfg.DataDir, runID)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset store")
	}

	return &Runner{
		cfg:     cfg,
		sortFn:  sortFn,
		gen:     NewGenerator(cfg.Seed, cfg.Size, cfg.ValueScale),
		store:   store,
		metrics: NewMetrics(),
		log: log.WithFields(logrus.Fields{
			"run_id":    runID,
			"algorithm": cfg.Algorithm,
			"storage":   cfg.Storage,
		}),
		runID: runID,
	}, nil
}

func (r *Runner) Metrics() *Metrics { return r.metrics }

func (r *Runner) Close() error { return r.store.Close() }

// Run 설정된 횟수만큼 정렬을 측정한다. ctx 취소는 trial 사이에서만 확인한다.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		RunID:     r.runID,
		Algorithm: r.cfg.Algorithm,
		Storage:   r.cfg.Storage,
		Size:      r.cfg.Size,
		Seed:      r.gen.Seed(),
		Started:   time.Now(),
		Records:   make([]Trial, 0, r.cfg.Trials),
	}
	r.log.WithFields(logrus.Fields{
		"size":   r.cfg.Size,
		"trials": r.cfg.Trials,
		"seed":   summary.Seed,
	}).Info("benchmark started")

	buf := make([]int, r.cfg.Size)
	for j := 0; j < r.cfg.Trials; j++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "interrupted after %d of %d trials", j, r.cfg.Trials)
		}

		r.gen.Fill(buf)
		data, err := r.stage(j, buf)
		if err != nil {
			return nil, err
		}

		trial := r.measure(j, data)
		if r.cfg.Verify && !slices.IsSorted(data) {
			return nil, errors.Wrapf(ErrUnsorted, "%s trial %d", r.cfg.Algorithm, j)
		}

		r.metrics.Observe(r.cfg.Algorithm, r.cfg.Storage, trial.Duration)
		r.log.WithFields(logrus.Fields{
			"trial":    j,
			"duration": trial.Duration,
		}).Debug("trial done")
		summary.Records = append(summary.Records, trial)
	}

	summary.summarize()
	r.log.WithFields(logrus.Fields{
		"mean":   summary.Mean,
		"median": summary.Median,
	}).Info("benchmark finished")
	return summary, nil
}

// stage 배열을 저장소에 넣었다가 다시 읽는다 (측정 시간에 포함하지 않음)
func (r *Runner) stage(trial int, buf []int) ([]int, error) {
	if err := r.store.Put(trial, buf); err != nil {
		return nil, errors.Wrapf(err, "store trial %d", trial)
	}
	data, err := r.store.Load(trial)
	if err != nil {
		return nil, errors.Wrapf(err, "load trial %d", trial)
	}
	if len(data) != len(buf) {
		return nil, errors.Wrapf(dataset.ErrCorrupt, "trial %d: loaded %d of %d values", trial, len(data), len(buf))
	}
	return data, nil
}

// measure 정렬 호출 한 번만 시간을 잰다
func (r *Runner) measure(index int, data []int) Trial {
	trial := Trial{Index: index}

	var sample *memSample
	if r.cfg.MemStats {
		sample = startMemSample()
	}

	start := time.Now()
	r.sortFn(data)
	trial.Duration = time.Since(start)

	if sample != nil {
		trial.AllocBytes, trial.Mallocs = sample.stop()
	}
	return trial
}
