// Package reconcile compares a simulation particle table against a reference table.
//
// # Architecture
//
// The reconcile system consists of two components:
//
// 1. Engine: builds the identifier sets present in only one table or in both,
// then compares the properties of every shared particle. Mass and width go
// through the precision-aware comparator in core/precision; charge and spin are
// compared exactly. Counters are returned in Result.Counts.
//
// 2. Cache: TTL-based store of loaded tables with stampede protection, so a
// long-running server does not re-read both inputs on every request.
//
// # Antiparticles
//
// Tables key antiparticles by the negated identifier. When both signs of an
// identifier are shared, only the positive one is compared and reported. The
// reference-only listing collapses ± pairs the same way.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Source:   tables.FileSource{Dir: "."},
//	    Tables:   cfg.Tables,
//	    CacheTTL: 5 * time.Minute,
//	}
//
//	result, err := reconcile.ReconcileAll(ctx, spec, logger)
//
//	// Or, with tables already in memory:
//	result := reconcile.Reconcile(simTable, refTable)
package reconcile
