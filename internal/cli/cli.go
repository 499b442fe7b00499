// Package cli implements the palindromes command.
package cli

import (
	"bufio"
	"context"
	goflag "flag"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"palindromes/config"
	"palindromes/metrics"
	"palindromes/palindrome"
	"palindromes/selector"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// Run executes the command with args and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	klog.Flush()
	if err == nil {
		return exitOK
	}

	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	var ue *usageError
	if errors.As(err, &ue) {
		_, _ = fmt.Fprintln(stderr, cmd.UsageString())
		return exitUsage
	}
	return exitError
}

// NewCommand builds the root command. Integers come from the positional
// arguments or, when there are none, from stdin.
func NewCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var (
		envFile string
		digits  bool
	)

	cmd := &cobra.Command{
		Use:   "palindromes [flags] [--] [numbers...]",
		Short: "Print the integers that are decimal palindromes",
		Long: `Print the integers that are decimal palindromes, one per line.

Numbers are read from the arguments, or whitespace separated from stdin when
no arguments are given. Put negative numbers after "--". Negative numbers
never match because the minus sign is part of the compared text.

Settings are read from PALINDROMES_MODE, PALINDROMES_WORKERS,
PALINDROMES_ORDERED and PALINDROMES_METRICS, optionally loaded from
--env-file. Flags win over the environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(envFile)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd.Flags(), cfg); err != nil {
				return &usageError{err: err}
			}
			klog.V(2).InfoS("Loaded configuration", "mode", cfg.Mode, "workers", cfg.Workers,
				"ordered", cfg.OrderStable, "metrics", cfg.Metrics)

			numbers, err := readNumbers(args, stdin)
			if err != nil {
				return err
			}

			var collector *metrics.Collector
			reg := prometheus.NewRegistry()
			if cfg.Metrics {
				collector = metrics.NewCollector()
				if err := collector.Register(reg); err != nil {
					return errors.Wrap(err, "register metrics")
				}
			}

			matches, err := filter(cmd.Context(), cfg, numbers, collector)
			if err != nil {
				return err
			}
			klog.V(2).InfoS("Filtered numbers", "inputs", len(numbers), "matches", len(matches))

			if err := writeNumbers(stdout, matches, digits); err != nil {
				return errors.Wrap(err, "write results")
			}
			if cfg.Metrics {
				return dumpMetrics(stderr, reg)
			}
			return nil
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment; ignored if missing")
	flags.String("mode", config.ModeParallel, "traversal: sequence or parallel")
	flags.Int("workers", 0, "goroutines for parallel mode, 0 means GOMAXPROCS")
	flags.Bool("ordered", false, "keep input order in parallel mode")
	flags.Bool("metrics", false, "print Prometheus metrics to stderr when done")
	flags.BoolVar(&digits, "digits", false, "print the digit count after each number")

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	flags.AddGoFlagSet(klogFlags)

	return cmd
}

// applyFlags copies explicitly set flags over the environment values.
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) error {
	var err error
	if flags.Changed("mode") {
		if cfg.Mode, err = flags.GetString("mode"); err != nil {
			return err
		}
	}
	if flags.Changed("workers") {
		if cfg.Workers, err = flags.GetInt("workers"); err != nil {
			return err
		}
	}
	if flags.Changed("ordered") {
		if cfg.OrderStable, err = flags.GetBool("ordered"); err != nil {
			return err
		}
	}
	if flags.Changed("metrics") {
		if cfg.Metrics, err = flags.GetBool("metrics"); err != nil {
			return err
		}
	}
	return cfg.Validate()
}

func filter(ctx context.Context, cfg *config.Config, numbers []int32, collector *metrics.Collector) ([]int32, error) {
	if !cfg.IsParallel() {
		return selector.GetPalindromeInSequence(numbers, selector.WithMetrics(collector))
	}
	return selector.GetPalindromeInParallelContext(ctx, numbers,
		selector.WithWorkers(cfg.Workers),
		selector.WithOrderStable(cfg.OrderStable),
		selector.WithMetrics(collector),
	)
}

// readNumbers parses args, or every whitespace separated token of stdin
// when args is empty. The result is never nil.
func readNumbers(args []string, stdin io.Reader) ([]int32, error) {
	if len(args) > 0 {
		numbers := make([]int32, 0, len(args))
		for _, arg := range args {
			n, err := parseInt32(arg)
			if err != nil {
				return nil, err
			}
			numbers = append(numbers, n)
		}
		return numbers, nil
	}

	numbers := make([]int32, 0)
	scanner := bufio.NewScanner(stdin)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		n, err := parseInt32(scanner.Text())
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read stdin")
	}
	return numbers, nil
}

func parseInt32(token string) (int32, error) {
	n, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer %q", token)
	}
	return int32(n), nil
}

func writeNumbers(w io.Writer, numbers []int32, digits bool) error {
	bw := bufio.NewWriter(w)
	for _, n := range numbers {
		var err error
		if digits {
			_, err = fmt.Fprintf(bw, "%d\t%d\n", n, palindrome.DigitCount(n))
		} else {
			_, err = fmt.Fprintln(bw, n)
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

func dumpMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}
