// Package particle defines the particle record shared by every table source.
//
// A Particle is keyed by its PDG identifier. The sign of the identifier separates
// a particle from its antiparticle, so a table that lists both carries the pair
// under +id and -id.
//
// # Units
//
//   - Mass and Width are in the energy units of the source file (GeV for both
//     supported sources).
//   - Charge is in units of the elementary charge.
//   - Spin is in units of ħ.
//
// Sources that store charge or spin in other units (EvtGen keeps 3×charge and
// 2×spin) are converted by the table loader before a Particle is built.
package particle
