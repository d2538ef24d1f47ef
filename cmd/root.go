package cmd

import (
	"fmt"
	"os"

	"particle-audit/core/config"
	"particle-audit/core/logger"
	"particle-audit/core/storage"
	"particle-audit/core/tables"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "particle-audit",
	Short: "Particle table reconciler",
	Long: `particle-audit compares the RapidSim particle table against the EvtGen
reference table and reports masses, widths, charges and spins that disagree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives readable timestamps for CLI users.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger shared by every command.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, l, nil
}

// newSource builds the table source selected by the configuration. The storage
// client is only created when tables are read from a bucket.
func newSource(cfg *config.Config) (tables.Source, error) {
	var client storage.Client
	if cfg.Tables.Source == tables.SourceStorage {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		client = c
	}

	src, err := tables.NewSource(cfg.Tables, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to select table source: %w", err)
	}
	return src, nil
}
