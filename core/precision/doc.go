// Package precision compares floating-point values that were published with an
// unknown number of significant digits.
//
// Two particle tables rarely agree bit-for-bit: one source quotes a mass to eight
// decimals, the other to five. Estimate recovers how many fractional digits a value
// was written with (assuming at most MaxDigits significant digits), and Compare uses
// the coarser of two estimates to decide whether a difference is real or rounding
// noise.
//
// # Verdicts
//
// Compare returns a Verdict instead of a bare bool so callers can render the
// outcome however they like. Verdict.Reportable reproduces the historical counting
// rule of the comparison script this package replaces. That rule is asymmetric:
//
//   - A zero on side A is reportable, a zero on side B is not.
//   - Within rounding noise, MorePreciseB and SamePrecision are still reportable,
//     MorePreciseA is not.
//
// Both asymmetries look unintentional but existing discrepancy counts depend on
// them, so they are kept as-is.
package precision
