package audit

import (
	"context"
	"time"

	"particle-audit/core/metrics"
	"particle-audit/core/reconcile"
	"particle-audit/core/tables"

	"go.uber.org/zap"
)

// Service runs reconciliations for the HTTP handlers.
type Service struct {
	spec    *reconcile.Spec
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewService creates a new audit service. A nil metrics disables instrumentation.
func NewService(spec *reconcile.Spec, logger *zap.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		spec:    spec,
		logger:  logger,
		metrics: m,
	}
}

// Run loads both tables (through the cache when enabled) and reconciles them.
func (s *Service) Run(ctx context.Context, l *zap.Logger) (*reconcile.Result, error) {
	start := time.Now()

	res, err := reconcile.ReconcileAll(ctx, s.spec, l)
	if err != nil {
		if s.metrics != nil {
			s.metrics.ObserveFailure(time.Since(start))
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.Observe(res, time.Since(start))
	}
	l.Debug("Reconciliation finished",
		zap.Int("entries", len(res.Entries)),
		zap.Int("simulation_only", len(res.SimOnly)),
		zap.Int("reference_only", len(res.RefOnly)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

// CheckTables returns the configured tables that cannot be found.
func (s *Service) CheckTables(ctx context.Context) ([]string, error) {
	return tables.Missing(ctx, s.spec.Source, s.spec.Tables)
}

// Refresh drops the cached tables so the next run reads the inputs again.
func (s *Service) Refresh() {
	reconcile.InvalidateCache(s.spec)
}
