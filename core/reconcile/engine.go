package reconcile

import (
	"context"
	"sort"

	"particle-audit/core/particle"
	"particle-audit/core/precision"
	"particle-audit/core/tables"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ReconcileAll loads both tables described by spec and reconciles them.
// Loaded tables are reused from the cache when spec.CacheTTL is set.
func ReconcileAll(ctx context.Context, spec *Spec, logger *zap.Logger) (*Result, error) {
	var (
		cache *TableCache
		err   error
	)
	if spec.CacheTTL > 0 {
		cache, err = GetOrBuildCache(ctx, spec, logger)
	} else {
		cache, err = BuildCache(ctx, spec, logger)
	}
	if err != nil {
		return nil, err
	}

	return ReconcileTables(cache.Tables), nil
}

// ReconcileTables reconciles a loaded table pair and records where it came from.
func ReconcileTables(pair *tables.Pair) *Result {
	res := Reconcile(pair.Simulation.Table, pair.Reference.Table)
	res.SimulationSource = pair.Simulation.Source
	res.ReferenceSource = pair.Reference.Source
	res.Skipped = append(append([]*tables.ParseError{}, pair.Simulation.Skipped...), pair.Reference.Skipped...)
	return res
}

// Reconcile compares a simulation table against a reference table.
//
// Shared identifiers are visited in ascending order. A negative identifier is
// skipped when its positive partner is also shared, so each particle/antiparticle
// pair is reported once under the positive identifier.
func Reconcile(sim, ref particle.Table) *Result {
	simKeys := sim.IDs()
	refKeys := ref.IDs()

	res := &Result{
		SimOnly: lo.Without(simKeys, refKeys...),
		RefOnly: lo.Without(refKeys, simKeys...),
		Both:    lo.Intersect(simKeys, refKeys),
		Entries: []Entry{},
	}
	sort.Ints(res.Both)

	for _, id := range collapsePairs(res.Both) {
		entry, differs := compareParticles(sim[id], ref[id])
		if !differs {
			continue
		}
		res.Entries = append(res.Entries, entry)
		res.Counts.add(entry)
	}

	res.RefOnlyListing = lo.Map(collapsePairs(res.RefOnly), func(id int, _ int) particle.Particle {
		return ref[id]
	})

	return res
}

// compareParticles builds the entry for a shared identifier.
// Mass and width go through the precision-aware comparator; charge and spin
// are compared exactly. The bool is false when nothing differs.
func compareParticles(s, r particle.Particle) (Entry, bool) {
	if s.Equal(r) {
		return Entry{}, false
	}

	entry := Entry{
		ID:         s.ID,
		Name:       s.Name,
		Simulation: s,
		Reference:  r,
	}

	if s.Mass != r.Mass {
		v := precision.Compare(s.Mass, r.Mass)
		entry.Mass = &v
	}
	if s.Width != r.Width {
		v := precision.Compare(s.Width, r.Width)
		entry.Width = &v
	}
	if s.Charge != r.Charge {
		entry.Charge = &ExactDiff{Simulation: s.Charge, Reference: r.Charge}
	}
	if s.Spin != r.Spin {
		entry.Spin = &ExactDiff{Simulation: s.Spin, Reference: r.Spin}
	}

	return entry, true
}

// collapsePairs drops negative identifiers whose positive partner is in ids.
func collapsePairs(ids []int) []int {
	set := lo.SliceToMap(ids, func(id int) (int, struct{}) {
		return id, struct{}{}
	})
	return lo.Filter(ids, func(id int, _ int) bool {
		if id >= 0 {
			return true
		}
		_, hasPartner := set[-id]
		return !hasPartner
	})
}
