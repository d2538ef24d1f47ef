package report

import (
	"bytes"
	"math"
	"testing"

	"particle-audit/core/particle"
	"particle-audit/core/precision"
	"particle-audit/core/reconcile"
	"particle-audit/core/tables"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// both stores p and its conjugate in tbl.
func both(tbl particle.Table, p particle.Particle, anti string) {
	tbl[p.ID] = p
	tbl[-p.ID] = p.Conjugate(anti)
}

func fixtureResult() *reconcile.Result {
	sim := particle.Table{}
	ref := particle.Table{}

	both(sim, particle.Particle{ID: 211, Name: "pi+", Mass: 0.13957039, Charge: 1}, "pi-")
	both(ref, particle.Particle{ID: 211, Name: "pi+", Mass: 0.13957018, Charge: 1}, "pi-")
	both(sim, particle.Particle{ID: 13, Name: "mu-", Mass: 0.1056583745, Charge: -1, Spin: 0.5}, "mu+")
	both(ref, particle.Particle{ID: 13, Name: "mu-", Mass: 0.1056584, Charge: -1, Spin: 0.5}, "mu+")
	both(sim, particle.Particle{ID: 24, Name: "W+", Mass: 80.379, Width: 2.085, Charge: 1, Spin: 1}, "W-")
	both(ref, particle.Particle{ID: 24, Name: "W+", Mass: 80.379, Width: 2.085, Spin: 1}, "W-")
	both(sim, particle.Particle{ID: 2212, Name: "p+", Mass: 0.938272081, Charge: 1, Spin: 0.5}, "anti-p-")
	both(ref, particle.Particle{ID: 2212, Name: "p+", Mass: 0.938272081, Charge: 1, Spin: 1.5}, "anti-p-")
	both(ref, particle.Particle{ID: 321, Name: "K+", Mass: 0.493677, Charge: 1}, "K-")

	sim[22] = particle.Particle{ID: 22, Name: "gamma", Spin: 1}
	ref[22] = particle.Particle{ID: 22, Name: "gamma", Spin: 1}
	sim[111] = particle.Particle{ID: 111, Name: "pi0", Mass: 0.1349768, Width: 7.81e-09}
	ref[111] = particle.Particle{ID: 111, Name: "pi0", Mass: 0.1349768}
	sim[310] = particle.Particle{ID: 310, Name: "K_S0", Mass: 0.497611}
	ref[310] = particle.Particle{ID: 310, Name: "K_S0", Mass: 0.497611, Width: 7.351e-15}
	sim[999] = particle.Particle{ID: 999, Name: "X"}
	ref[443] = particle.Particle{ID: 443, Name: "J/psi", Mass: 3.0969, Width: 9.29e-05, Spin: 1}

	return reconcile.Reconcile(sim, ref)
}

func TestWrite_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, fixtureResult()))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "full_report", buf.Bytes())
}

func TestWrite_SkippedSection(t *testing.T) {
	res := reconcile.Reconcile(particle.Table{}, particle.Table{})
	res.Skipped = []*tables.ParseError{
		{Source: "evtgenParts.txt", Line: 5, Text: "end", Column: -1, Err: tables.ErrParse},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res))

	out := buf.String()
	assert.Contains(t, out, "RS only: 0 EG only: 0 both: 0\n")
	assert.Contains(t, out, "---------SKIPPED LINES---------\n\n")
	assert.Contains(t, out, "evtgenParts.txt:5:")
}

func TestWrite_NoSkippedSectionWhenClean(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, fixtureResult()))
	assert.NotContains(t, buf.String(), "SKIPPED")
}

func TestWriteEntry(t *testing.T) {
	mass := precision.Compare(0.13957039, 0.13957018)
	width := precision.Compare(1.25, 1.251)
	e := reconcile.Entry{
		ID:     211,
		Name:   "pi+",
		Mass:   &mass,
		Width:  &width,
		Charge: &reconcile.ExactDiff{Simulation: 1, Reference: 0},
		Spin:   &reconcile.ExactDiff{Simulation: 0, Reference: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteEntry(&buf, e))

	assert.Equal(t,
		"211 pi+\n"+
			"mass:    DIFFERENT 0.13957039 0.13957018\n"+
			"width:   EG more precise 1.25 1.251\n"+
			"charge:  0.0 1.0\n"+
			"spin:    2.0 0.0\n",
		buf.String())
}

func TestWriteCounts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCounts(&buf, reconcile.Counts{Mass: 3, Width: 0, Charge: 12, Spin: 1}))
	assert.Equal(t, "M G C S\n3 0 12 1\n", buf.String())
}

func TestVerdictText(t *testing.T) {
	tests := map[precision.Kind]string{
		precision.ZeroMismatchA:   "RS is zero",
		precision.ZeroMismatchB:   "EG is zero",
		precision.SignificantDiff: "DIFFERENT",
		precision.MorePreciseA:    "RS more precise",
		precision.MorePreciseB:    "EG more precise",
		precision.SamePrecision:   "SAME precision",
		precision.Kind(0):         "unknown",
	}
	for kind, want := range tests {
		assert.Equal(t, want, VerdictText(kind))
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{-1, "-1.0"},
		{0.5, "0.5"},
		{80.379, "80.379"},
		{0.13957039, "0.13957039"},
		{0.0001, "0.0001"},
		{9.29e-05, "9.29e-05"},
		{7.351e-15, "7.351e-15"},
		{1e16, "1e+16"},
		{123456789012345.0, "123456789012345.0"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFloat(tt.in), "input %v", tt.in)
	}
}

func TestWriteSkipped(t *testing.T) {
	skipped := []*tables.ParseError{
		{Source: "rapidsimParts.txt", Line: 3, Text: "13 mu- mu+ abc", Column: 3, Err: tables.ErrParse},
		{Source: "evtgenParts.txt", Line: 5, Text: "end", Column: -1, Err: tables.ErrParse},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSkipped(&buf, skipped))

	assert.Equal(t,
		"rapidsimParts.txt:3: column 3: malformed table line\n"+
			"evtgenParts.txt:5: malformed table line\n",
		buf.String())
}
