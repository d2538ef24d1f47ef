package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"particle-audit/core/reconcile"
	"particle-audit/core/report"
	"particle-audit/core/tables"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	simPath      string
	refPath      string
	strictTables bool
)

// compareCmd runs one reconciliation and prints the report to stdout.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the RapidSim table against the EvtGen table",
	Long: `Loads both particle tables, compares every shared particle and prints
the difference report. Diagnostics go to stderr so the report can be redirected.`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&simPath, "sim", "", "Path of the RapidSim table (overrides TABLES_SIMULATION)")
	compareCmd.Flags().StringVar(&refPath, "ref", "", "Path of the EvtGen table (overrides TABLES_REFERENCE)")
	compareCmd.Flags().BoolVar(&strictTables, "strict", false, "Abort on the first malformed line instead of skipping it")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	applyOverrides(&cfg.Tables, simPath, refPath)
	if cmd.Flags().Changed("strict") {
		cfg.Tables.Strict = strictTables
	}

	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	return compare(cmd.Context(), cmd.OutOrStdout(), &reconcile.Spec{Source: src, Tables: cfg.Tables}, l)
}

// compare reconciles the tables described by spec and writes the report to out.
func compare(ctx context.Context, out io.Writer, spec *reconcile.Spec, l *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := reconcile.ReconcileAll(ctx, spec, l)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	l.Info("Comparison finished",
		zap.String("simulation", res.SimulationSource),
		zap.String("reference", res.ReferenceSource),
		zap.Int("both", len(res.Both)),
		zap.Int("differences", len(res.Entries)),
		zap.Int("skipped_lines", len(res.Skipped)),
	)

	if err := report.Write(out, res); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// applyOverrides replaces the configured table names with explicit paths.
// File paths from flags are taken as given, so the configured directory is
// folded into the names that were not overridden.
func applyOverrides(cfg *tables.Config, sim, ref string) {
	if sim == "" && ref == "" {
		return
	}

	if cfg.Source == tables.SourceFile || cfg.Source == "" {
		if cfg.Dir != "" {
			cfg.Simulation = filepath.Join(cfg.Dir, cfg.Simulation)
			cfg.Reference = filepath.Join(cfg.Dir, cfg.Reference)
		}
		cfg.Dir = ""
	}

	if sim != "" {
		cfg.Simulation = sim
	}
	if ref != "" {
		cfg.Reference = ref
	}
}
