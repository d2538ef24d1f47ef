// Package report renders reconciliation results as plain text.
//
// The layout follows the historical comparison script so existing readers of the
// report keep working: a summary of set sizes, one block per differing particle,
// the "M G C S" tally and the list of particles only the reference table knows.
// Simulation values are labelled RS (RapidSim) and reference values EG (EvtGen).
package report
