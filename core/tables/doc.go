// Package tables loads particle tables from the line-oriented files published by
// the simulation tool (RapidSim) and the reference generator (EvtGen).
//
// Both files are whitespace-delimited, one particle per line, but with different
// column layouts. A Format captures a layout; Simulation and Reference are the two
// supported ones:
//
//	Simulation: id name antiname mass width charge spin ...
//	Reference:  add p Particle name id mass width maxwidth 3*charge 2*spin ...
//
// Simulation rows with an antiparticle name other than "---" also produce the
// conjugate row under the negated identifier.
//
// # Malformed lines
//
// Blank lines and comment lines (starting with "#" or "*") are ignored. Any other
// line that cannot be parsed becomes a *ParseError. By default the line is skipped
// and the error is returned in Result.Skipped so the caller can warn about it; with
// Options.Strict the first malformed line aborts the load.
//
// # Sources
//
// A Source opens a table by name. FileSource reads from a local directory and
// BucketSource reads from an object storage bucket through core/storage.
package tables
