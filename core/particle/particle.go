package particle

import "sort"

// NoAntiparticle is the antiparticle name used by sources for self-conjugate particles.
const NoAntiparticle = "---"

// Particle is a single row of a particle table.
type Particle struct {
	// ID is the signed PDG identifier. Negative values denote antiparticles.
	ID int `json:"id"`
	// Name is the display name used by the source.
	Name string `json:"name"`
	// Mass is the nominal mass.
	Mass float64 `json:"mass"`
	// Width is the decay width.
	Width float64 `json:"width"`
	// Charge is the electric charge in units of e.
	Charge float64 `json:"charge"`
	// Spin is the spin in units of ħ.
	Spin float64 `json:"spin"`
}

// Conjugate returns the antiparticle of p under the given name.
// Identifier and charge are negated; mass, width and spin are unchanged.
func (p Particle) Conjugate(name string) Particle {
	return Particle{
		ID:     -p.ID,
		Name:   name,
		Mass:   p.Mass,
		Width:  p.Width,
		Charge: -p.Charge,
		Spin:   p.Spin,
	}
}

// Equal reports whether p and o carry identical physical properties.
// Names are not compared.
func (p Particle) Equal(o Particle) bool {
	return p.Mass == o.Mass && p.Width == o.Width && p.Charge == o.Charge && p.Spin == o.Spin
}

// Table maps identifiers to particles for a single source.
// A table is built once by a loader and treated as read-only afterwards.
type Table map[int]Particle

// Get returns the particle with the given identifier.
func (t Table) Get(id int) (Particle, bool) {
	p, ok := t[id]
	return p, ok
}

// IDs returns every identifier in the table in ascending order.
func (t Table) IDs() []int {
	ids := make([]int, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
