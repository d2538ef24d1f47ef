package precision

import "math"

// SignificanceFactor scales the last reliable digit of the coarser value into the
// threshold above which a difference counts as significant.
const SignificanceFactor = 0.999

// Kind classifies the outcome of a comparison.
type Kind int

const (
	// ZeroMismatchA means A is exactly zero while B is not.
	ZeroMismatchA Kind = iota + 1
	// ZeroMismatchB means B is exactly zero while A is not.
	ZeroMismatchB
	// SignificantDiff means the values differ by at least one unit of the
	// coarser value's last reliable digit.
	SignificantDiff
	// MorePreciseA means the values agree within rounding and A has more digits.
	MorePreciseA
	// MorePreciseB means the values agree within rounding and B has more digits.
	MorePreciseB
	// SamePrecision means the values agree within rounding at equal precision.
	SamePrecision
)

var kindNames = map[Kind]string{
	ZeroMismatchA:   "zero_mismatch_a",
	ZeroMismatchB:   "zero_mismatch_b",
	SignificantDiff: "significant_diff",
	MorePreciseA:    "more_precise_a",
	MorePreciseB:    "more_precise_b",
	SamePrecision:   "same_precision",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Verdict is the structured result of Compare.
type Verdict struct {
	Kind   Kind    `json:"kind"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	ScaleA int     `json:"scale_a"`
	ScaleB int     `json:"scale_b"`
}

// Diff returns A - B.
func (v Verdict) Diff() float64 {
	return v.A - v.B
}

// Reportable reports whether the verdict increments a discrepancy counter.
// See the package documentation for why this is not simply Kind == SignificantDiff.
func (v Verdict) Reportable() bool {
	switch v.Kind {
	case ZeroMismatchA, SignificantDiff, MorePreciseB, SamePrecision:
		return true
	default:
		return false
	}
}

// Threshold returns the smallest difference considered significant between
// values with the given precision scores.
func Threshold(scaleA, scaleB int) float64 {
	return SignificanceFactor * math.Pow10(-min(scaleA, scaleB))
}

// Compare classifies a pair of values that describe the same quantity.
func Compare(a, b float64) Verdict {
	v := Verdict{
		A:      a,
		B:      b,
		ScaleA: Estimate(a),
		ScaleB: Estimate(b),
	}

	switch {
	case a == 0 && b != 0:
		v.Kind = ZeroMismatchA
	case a != 0 && b == 0:
		v.Kind = ZeroMismatchB
	case math.Abs(a-b) >= Threshold(v.ScaleA, v.ScaleB):
		v.Kind = SignificantDiff
	case v.ScaleA > v.ScaleB:
		v.Kind = MorePreciseA
	case v.ScaleA < v.ScaleB:
		v.Kind = MorePreciseB
	default:
		v.Kind = SamePrecision
	}

	return v
}
