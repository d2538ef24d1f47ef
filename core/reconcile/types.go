package reconcile

import (
	"strings"
	"time"

	"particle-audit/core/particle"
	"particle-audit/core/precision"
	"particle-audit/core/tables"
)

// Result is the outcome of reconciling a simulation table against a reference table.
type Result struct {
	// SimulationSource and ReferenceSource name the inputs, when known.
	SimulationSource string `json:"simulation_source,omitempty"`
	ReferenceSource  string `json:"reference_source,omitempty"`

	// SimOnly, RefOnly and Both partition the union of identifiers. Each is sorted.
	SimOnly []int `json:"sim_only"`
	RefOnly []int `json:"ref_only"`
	Both    []int `json:"both"`

	// Entries holds one entry per shared particle whose properties differ,
	// in ascending identifier order. Antiparticles whose particle is also
	// shared are folded into the particle's entry.
	Entries []Entry `json:"entries"`

	// RefOnlyListing lists reference-only particles with ± pairs collapsed.
	RefOnlyListing []particle.Particle `json:"ref_only_listing"`

	// Counts aggregates the discrepancy counters.
	Counts Counts `json:"counts"`

	// Skipped lists malformed lines dropped while loading either table.
	Skipped []*tables.ParseError `json:"-"`
}

// Lookup returns the entry for id. A negative id whose entry was folded into
// the positive identifier resolves to that entry.
func (r *Result) Lookup(id int) (Entry, bool) {
	for _, e := range r.Entries {
		if e.ID == id {
			return e, true
		}
	}
	if id < 0 {
		return r.Lookup(-id)
	}
	return Entry{}, false
}

// Entry describes a particle present in both tables with at least one differing property.
type Entry struct {
	// ID is the shared identifier.
	ID int `json:"id"`
	// Name is the simulation table's name for the particle.
	Name string `json:"name"`

	Simulation particle.Particle `json:"simulation"`
	Reference  particle.Particle `json:"reference"`

	// Mass and Width are set only when the raw values differ.
	Mass  *precision.Verdict `json:"mass,omitempty"`
	Width *precision.Verdict `json:"width,omitempty"`

	// Charge and Spin are set only when the values are not exactly equal.
	Charge *ExactDiff `json:"charge,omitempty"`
	Spin   *ExactDiff `json:"spin,omitempty"`
}

// ExactDiff records a property compared with plain equality.
type ExactDiff struct {
	Simulation float64 `json:"simulation"`
	Reference  float64 `json:"reference"`
}

// Counts holds the per-property discrepancy counters.
type Counts struct {
	Mass   int `json:"mass"`
	Width  int `json:"width"`
	Charge int `json:"charge"`
	Spin   int `json:"spin"`
}

func (c *Counts) add(e Entry) {
	if e.Mass != nil && e.Mass.Reportable() {
		c.Mass++
	}
	if e.Width != nil && e.Width.Reportable() {
		c.Width++
	}
	if e.Charge != nil {
		c.Charge++
	}
	if e.Spin != nil {
		c.Spin++
	}
}

// Spec bundles the table source and cache settings for a reconciliation run.
type Spec struct {
	// Source opens the input tables.
	Source tables.Source

	// Tables names the inputs and the parse policy.
	Tables tables.Config

	// CacheTTL is the time-to-live for loaded tables.
	// If zero, caching is disabled.
	CacheTTL time.Duration
}

// CacheKey returns a unique key for caching based on spec parameters.
// Specs reading different inputs or with a different parse policy never share tables.
func (s *Spec) CacheKey() string {
	parts := []string{
		s.Source.Describe(s.Tables.Simulation),
		s.Source.Describe(s.Tables.Reference),
	}
	if s.Tables.Strict {
		parts = append(parts, "strict")
	}
	return strings.Join(parts, "|")
}
