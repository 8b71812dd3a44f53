package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rlaau/qsbench/bench"
	"github.com/rlaau/qsbench/dataset"
)

var errUsage = errors.New("wrong number of arguments")

// execute 명령을 실행하고 프로세스 종료 코드를 돌려준다
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// nil 이면 cobra 가 os.Args 를 읽는다
		args = []string{}
	}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Usage: %s\n", cmd.UseLine())
		}
		errLog := logrus.New()
		errLog.SetOutput(stderr)
		errLog.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
		errLog.WithError(err).Error("qsbench failed")
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var configPath string
	flagCfg := bench.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "qsbench <number of elements> <number of arrays>",
		Short: "Time sorting M random arrays of N integers",
		Long: `Generates M arrays of N uniform random integers in [0, value-scale*N],
sorts each one with the chosen algorithm and prints "N mean-seconds".`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return errors.Mark(err, errUsage)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bench.LoadConfig(configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd.Flags(), &cfg, flagCfg)
			if cfg.Size, err = parseCount(args[0]); err != nil {
				return err
			}
			if cfg.Trials, err = parseCount(args[1]); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, stdout, stderr)
		},
	}

	// 첫 위치 인자 뒤의 "-1" 같은 음수는 플래그가 아니라 인자로 읽는다
	cmd.Flags().SetInterspersed(false)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Mark(err, errUsage)
	})

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&flagCfg.Algorithm, "algorithm", "a", flagCfg.Algorithm,
		"sort algorithm: "+strings.Join(bench.Algorithms(), ", "))
	flags.Uint64Var(&flagCfg.Seed, "seed", 0, "random seed (0 = from entropy)")
	flags.IntVar(&flagCfg.ValueScale, "value-scale", flagCfg.ValueScale, "values are drawn from [0, value-scale*N]")
	flags.StringVar(&flagCfg.Storage, "storage", flagCfg.Storage,
		"where input arrays are staged: "+strings.Join(dataset.Kinds(), ", "))
	flags.StringVar(&flagCfg.DataDir, "data-dir", "", "directory for file, bbolt, badger and pebble storage")
	flags.BoolVar(&flagCfg.Verify, "verify", false, "fail if a result is not sorted")
	flags.BoolVar(&flagCfg.MemStats, "mem-stats", false, "record heap allocations of every sort call")
	flags.StringVar(&flagCfg.JSONOut, "json", "", "write a JSON report to this path")
	flags.StringVar(&flagCfg.MarkdownOut, "markdown", "", "write a Markdown report to this path")
	flags.StringVar(&flagCfg.MetricsOut, "metrics", "", "write Prometheus metrics in textfile format to this path")
	flags.StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "debug, info, warn or error")
	return cmd
}

// applyFlags 명시적으로 지정된 플래그만 설정 파일 값을 덮어쓴다
func applyFlags(flags *pflag.FlagSet, cfg *bench.Config, set bench.Config) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "algorithm":
			cfg.Algorithm = set.Algorithm
		case "seed":
			cfg.Seed = set.Seed
		case "value-scale":
			cfg.ValueScale = set.ValueScale
		case "storage":
			cfg.Storage = set.Storage
		case "data-dir":
			cfg.DataDir = set.DataDir
		case "verify":
			cfg.Verify = set.Verify
		case "mem-stats":
			cfg.MemStats = set.MemStats
		case "json":
			cfg.JSONOut = set.JSONOut
		case "markdown":
			cfg.MarkdownOut = set.MarkdownOut
		case "metrics":
			cfg.MetricsOut = set.MetricsOut
		case "log-level":
			cfg.LogLevel = set.LogLevel
		}
	})
}

// parseCount 위치 인자를 정수로 읽는다
func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if errors.Is(err, strconv.ErrRange) {
		return 0, errors.Newf("number too large or too small: %q", arg)
	}
	if err != nil {
		return 0, errors.Newf("command line argument invalid: must be int: %q", arg)
	}
	return n, nil
}

func run(ctx context.Context, cfg bench.Config, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := bench.NewLogger(cfg.LogLevel, stderr)
	if err != nil {
		return err
	}

	runner, err := bench.NewRunner(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := runner.Close(); cerr != nil {
			logger.WithError(cerr).Warn("close dataset store")
		}
	}()

	summary, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if cfg.JSONOut != "" {
		if err := bench.WriteJSON(cfg.JSONOut, summary); err != nil {
			return err
		}
	}
	if cfg.MarkdownOut != "" {
		if err := bench.WriteMarkdown(cfg.MarkdownOut, summary); err != nil {
			return err
		}
	}
	if cfg.MetricsOut != "" {
		if err := runner.Metrics().WriteTextfile(cfg.MetricsOut); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(stdout, bench.FormatLine(summary))
	return err
}
