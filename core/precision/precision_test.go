package precision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  int
	}{
		{"Zero", 0, 0},
		{"One", 1.0, 0},
		{"Two", 2.0, 0},
		{"OneDecimal", 1.5, 1},
		{"TwoDecimals", 1.25, 2},
		{"ThreeDecimalsLeadingZeros", 0.001, 3},
		{"PionMassRapidSim", 0.13957039, 8},
		{"PionMassEvtGen", 0.13957018, 8},
		{"IntegerDigitsDoNotCount", 125.5, 1},
		{"NegativeUsesAbsoluteValue", -0.5, 1},
		{"IntegerPartExhaustsDigits", 1e15, 0},
		{"NaN", math.NaN(), 0},
		{"Inf", math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Estimate(tt.value))
		})
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	for _, v := range []float64{0.13957039, 1.5, 1.50, 91.1876, 2.4952} {
		assert.Equal(t, Estimate(v), Estimate(v), "value %v", v)
	}
	assert.Equal(t, Estimate(1.0), Estimate(2.0))
	assert.Equal(t, Estimate(1.5), Estimate(1.50))
}

func TestMagnitude(t *testing.T) {
	assert.Equal(t, 1, Magnitude(0))
	assert.Equal(t, 1, Magnitude(0.5))
	assert.Equal(t, 1, Magnitude(9.99))
	assert.Equal(t, 2, Magnitude(10))
	assert.Equal(t, 3, Magnitude(-125.5))
	assert.Equal(t, 16, Magnitude(1e15))
	assert.Equal(t, 1, Magnitude(math.NaN()))
	assert.Equal(t, 1, Magnitude(math.Inf(1)))
	assert.Equal(t, 1, Magnitude(math.Inf(-1)))
}

func TestMagnitude_PowersOfTen(t *testing.T) {
	for k := 0; k <= 20; k++ {
		p := math.Pow10(k)
		assert.Equal(t, k+1, Magnitude(p), "10^%d", k)
		assert.Equal(t, k+1, Magnitude(-p), "-10^%d", k)
		// 10^k - 1 stops being exact beyond 2^53.
		if k > 0 && k <= 15 {
			assert.Equal(t, k, Magnitude(p-1), "10^%d - 1", k)
		}
	}
}

func TestCompare_ZeroAsymmetry(t *testing.T) {
	t.Run("AIsZero", func(t *testing.T) {
		v := Compare(0.0, 5.0)
		assert.Equal(t, ZeroMismatchA, v.Kind)
		assert.True(t, v.Reportable())
	})

	t.Run("BIsZero", func(t *testing.T) {
		v := Compare(5.0, 0.0)
		assert.Equal(t, ZeroMismatchB, v.Kind)
		assert.False(t, v.Reportable())
	})
}

func TestCompare_Threshold(t *testing.T) {
	tests := []struct {
		name       string
		a, b       float64
		want       Kind
		reportable bool
	}{
		{"HundredthAtScaleTwo", 1.25, 1.26, SignificantDiff, true},
		{"HundredthBelowAtScaleTwo", 1.25, 1.24, SignificantDiff, true},
		{"WholeUnitAtScaleZero", 1.0, 2.0, SignificantDiff, true},
		{"ThousandthAtScaleTwo", 1.25, 1.251, MorePreciseB, true},
		{"ThousandthAtScaleTwoReversed", 1.251, 1.25, MorePreciseA, false},
		{"RoundedReferenceValue", 0.13957, 0.13957039, MorePreciseB, true},
		{"RoundedSimulationValue", 0.13957039, 0.13957, MorePreciseA, false},
		{"IdenticalValues", 0.5, 0.5, SamePrecision, true},
		{"PionMass", 0.13957039, 0.13957018, SignificantDiff, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Compare(tt.a, tt.b)
			assert.Equal(t, tt.want, v.Kind)
			assert.Equal(t, tt.reportable, v.Reportable())
		})
	}
}

func TestCompare_VerdictFields(t *testing.T) {
	v := Compare(0.13957039, 0.13957018)

	assert.Equal(t, 8, v.ScaleA)
	assert.Equal(t, 8, v.ScaleB)
	assert.InDelta(t, 2.1e-7, v.Diff(), 1e-12)
	assert.InDelta(t, 0.999e-8, Threshold(v.ScaleA, v.ScaleB), 1e-20)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "significant_diff", SignificantDiff.String())
	assert.Equal(t, "zero_mismatch_b", ZeroMismatchB.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
