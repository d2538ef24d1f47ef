package precision

import "math"

// MaxDigits is the number of significant decimal digits a value is assumed to carry.
const MaxDigits = 14

// Magnitude returns the number of integer digits of |x|, counting 0 as one digit.
// NaN and infinities report one digit.
func Magnitude(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 1
	}
	intPart := math.Floor(math.Abs(x))
	if intPart == 0 {
		return 1
	}

	// Log10 is not exact at every power of ten, so settle the boundary exactly.
	m := int(math.Log10(intPart)) + 1
	switch {
	case intPart >= math.Pow10(m):
		m++
	case intPart < math.Pow10(m-1):
		m--
	}
	return m
}

// Estimate returns a relative precision score for x: roughly the number of
// fractional digits x was written with. Only the difference between two scores
// and their equality are meaningful.
//
// Values whose integer part already uses MaxDigits or more digits have no
// fractional precision left and score 0. NaN and infinities also score 0.
func Estimate(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}

	magnitude := Magnitude(x)
	if magnitude >= MaxDigits {
		return 0
	}

	abs := math.Abs(x)
	fracPart := abs - math.Floor(abs)

	// The leading multiplier keeps leading zeros of the fraction significant.
	multiplier := pow10(MaxDigits - magnitude)
	fracDigits := multiplier + int64(float64(multiplier)*fracPart+0.5)
	for fracDigits%10 == 0 {
		fracDigits /= 10
	}

	return int(math.Log10(float64(fracDigits)))
}

func pow10(n int) int64 {
	v := int64(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}
