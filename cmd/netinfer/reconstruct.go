// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netinfer/basis"
	"github.com/katalvlaran/netinfer/dynamics"
	"github.com/katalvlaran/netinfer/evaluate"
	"github.com/katalvlaran/netinfer/inference"
	"github.com/katalvlaran/netinfer/internal/config"
	"github.com/katalvlaran/netinfer/internal/dataio"
	"github.com/katalvlaran/netinfer/internal/metrics"
	"github.com/katalvlaran/netinfer/matrix"
	"github.com/katalvlaran/netinfer/reconstruct"
)

// reconstructFlags mirrors config.Config; only flags the user set override
// the file.
type reconstructFlags struct {
	configPath    string
	dataDir       string
	model         string
	basis         string
	order         int
	units         []int
	threshold     float64
	rcond         float64
	workers       int
	excludeTarget bool
	timeout       time.Duration
	logLevel      string
	logFormat     string
	metricsOut    string
}

func newReconstructCmd() *cobra.Command {
	var f reconstructFlags
	cmd := &cobra.Command{
		Use:   "reconstruct",
		Short: "Rank the incoming links of one or more units",
		Long: `Reads data.dat, ts_param.dat and (optionally) connectivity.dat from the
data directory, reconstructs every requested unit in turn and prints a
YAML report. With a connectivity matrix each unit also gets an AUC score.

Examples:
  netinfer reconstruct --data Data --model michaelis_menten --basis polynomial --order 6 --unit 10
  netinfer reconstruct --config run.yaml --unit 0 --unit 1 --metrics-out netinfer.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			return runReconstruct(cmd, cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML run configuration")
	fl.StringVar(&f.dataDir, "data", config.DefaultDataDir, "dataset directory")
	fl.StringVar(&f.model, "model", config.DefaultModel, "dynamics model (see 'netinfer list')")
	fl.StringVar(&f.basis, "basis", basis.Polynomial.String(), "basis kind (see 'netinfer list')")
	fl.IntVar(&f.order, "order", config.DefaultOrder, "expansion order K")
	fl.IntSliceVarP(&f.units, "unit", "u", nil, "target unit, repeatable")
	fl.Float64Var(&f.threshold, "threshold", reconstruct.DefaultThreshold, "stopping threshold θ")
	fl.Float64Var(&f.rcond, "rcond", matrix.DefaultRcond, "pseudoinverse relative singular-value cutoff")
	fl.IntVar(&f.workers, "workers", 0, "parallel candidate evaluations (0 = GOMAXPROCS)")
	fl.BoolVar(&f.excludeTarget, "exclude-target", false, "never offer the target as its own driver")
	fl.DurationVar(&f.timeout, "timeout", 0, "overall deadline (0 = none)")
	fl.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	fl.StringVar(&f.logFormat, "log-format", config.DefaultLogFormat, "text or json")
	fl.StringVar(&f.metricsOut, "metrics-out", "", "write Prometheus metrics to this textfile")

	return cmd
}

// resolveConfig loads the file, then applies the flags the user changed.
func resolveConfig(cmd *cobra.Command, f reconstructFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	fl := cmd.Flags()
	if fl.Changed("data") {
		cfg.DataDir = f.dataDir
	}
	if fl.Changed("model") {
		cfg.Model = f.model
	}
	if fl.Changed("basis") {
		if cfg.Basis, err = basis.ParseKind(f.basis); err != nil {
			return cfg, err
		}
	}
	if fl.Changed("order") {
		cfg.Order = f.order
	}
	if fl.Changed("unit") {
		cfg.Units = f.units
	}
	if fl.Changed("threshold") {
		cfg.Threshold = f.threshold
	}
	if fl.Changed("rcond") {
		cfg.Rcond = f.rcond
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("exclude-target") {
		cfg.ExcludeTarget = f.excludeTarget
	}
	if fl.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if fl.Changed("metrics-out") {
		cfg.MetricsOut = f.metricsOut
	}

	return cfg, cfg.Validate()
}

func runReconstruct(cmd *cobra.Command, cfg config.Config) error {
	runID := uuid.NewString()
	logger := cfg.Log.NewLogger(cmd.ErrOrStderr()).With(slog.String("run_id", runID))

	policy, err := dynamics.Lookup(cfg.Model)
	if err != nil {
		return err
	}
	ds, err := dataio.LoadDataset(cfg.DataDir)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded",
		slog.String("dir", cfg.DataDir),
		slog.Int("rows", ds.Trajectory.Rows()),
		slog.Int("replicates", ds.Replicates),
		slog.Int("length", ds.Length),
		slog.Bool("truth", ds.Truth != nil),
	)

	reg := prometheus.NewRegistry()
	opts := append(cfg.Options(),
		reconstruct.WithLogger(logger),
		reconstruct.WithRecorder(metrics.NewRecorder(reg)),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	rep := runReport{RunID: runID, Model: policy.Name, Basis: cfg.Basis.String(), Order: cfg.Order}
	var aucs []evaluate.Metric
	var runErr error
	for _, unit := range cfg.Units {
		r, err := inference.Run(ctx, inference.Input{
			Trajectory: ds.Trajectory,
			Length:     ds.Length,
			Replicates: ds.Replicates,
			Unit:       unit,
			Basis:      cfg.Basis,
			Order:      cfg.Order,
			Truth:      ds.Truth,
			Policy:     policy,
		}, opts...)
		if r != nil {
			rep.Units = append(rep.Units, newUnitReport(r))
			if r.Evaluation != nil {
				aucs = append(aucs, r.Evaluation.AUC)
			}
		}
		if err != nil {
			if !errors.Is(err, reconstruct.ErrAborted) {
				return fmt.Errorf("unit %d: %w", unit, err)
			}
			runErr = fmt.Errorf("unit %d: %w", unit, err)
			logger.Warn("run aborted; reporting partial results", slog.Int("unit", unit))
			break
		}
	}
	if ds.Truth != nil {
		rep.MeanAUC = evaluate.Mean(aucs).String()
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if cfg.MetricsOut != "" {
		if err := metrics.WriteTextfile(reg, cfg.MetricsOut); err != nil {
			return err
		}
		logger.Info("metrics written", slog.String("path", cfg.MetricsOut))
	}

	return runErr
}
