package tables

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Missing returns the locations of the configured tables that src cannot find.
// Any failure other than a missing table is returned as an error.
func Missing(ctx context.Context, src Source, cfg Config) ([]string, error) {
	missing := []string{}

	for _, name := range []string{cfg.Simulation, cfg.Reference} {
		rc, err := src.Open(ctx, name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				missing = append(missing, src.Describe(name))
				continue
			}
			return nil, errors.Wrapf(err, "checking %s", src.Describe(name))
		}
		_ = rc.Close()
	}

	return missing, nil
}
