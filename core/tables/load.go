package tables

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Pair holds the two tables being reconciled.
type Pair struct {
	Simulation *Result
	Reference  *Result
}

// Load reads both tables from src. Each input is read to completion and closed
// before the next one is opened. Skipped lines are logged as warnings.
func Load(ctx context.Context, src Source, cfg Config, logger *zap.Logger) (*Pair, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := Options{Strict: cfg.Strict}

	sim, err := loadOne(ctx, src, cfg.Simulation, Simulation, opts, logger)
	if err != nil {
		return nil, err
	}

	ref, err := loadOne(ctx, src, cfg.Reference, Reference, opts, logger)
	if err != nil {
		return nil, err
	}

	return &Pair{Simulation: sim, Reference: ref}, nil
}

func loadOne(ctx context.Context, src Source, name string, f Format, opts Options, logger *zap.Logger) (*Result, error) {
	location := src.Describe(name)
	logger.Debug("Loading particle table", zap.String("format", f.Name), zap.String("location", location))

	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	res, err := Parse(rc, location, f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s table", f.Name)
	}

	for _, skipped := range res.Skipped {
		logger.Warn("Skipping malformed line",
			zap.String("source", skipped.Source),
			zap.Int("line", skipped.Line),
			zap.Int("column", skipped.Column),
			zap.String("text", skipped.Text),
			zap.Error(skipped.Err),
		)
	}

	logger.Info("Loaded particle table",
		zap.String("format", f.Name),
		zap.String("location", location),
		zap.Int("rows", res.Rows),
		zap.Int("particles", len(res.Table)),
		zap.Int("skipped", len(res.Skipped)),
	)

	return res, nil
}
