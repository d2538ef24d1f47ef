package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"particle-audit/core/precision"
	"particle-audit/core/reconcile"
	"particle-audit/core/tables"
)

// Source labels used in verdict text.
const (
	SimulationLabel = "RS"
	ReferenceLabel  = "EG"
)

var verdictText = map[precision.Kind]string{
	precision.ZeroMismatchA:   SimulationLabel + " is zero",
	precision.ZeroMismatchB:   ReferenceLabel + " is zero",
	precision.SignificantDiff: "DIFFERENT",
	precision.MorePreciseA:    SimulationLabel + " more precise",
	precision.MorePreciseB:    ReferenceLabel + " more precise",
	precision.SamePrecision:   "SAME precision",
}

// VerdictText returns the human-readable label of a verdict kind.
func VerdictText(k precision.Kind) string {
	if text, ok := verdictText[k]; ok {
		return text
	}
	return k.String()
}

// Write renders the full reconciliation report.
func Write(w io.Writer, res *reconcile.Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "---------SUMMARY---------\n\n")
	fmt.Fprintf(bw, "%s only: %d %s only: %d both: %d\n\n",
		SimulationLabel, len(res.SimOnly), ReferenceLabel, len(res.RefOnly), len(res.Both))

	fmt.Fprint(bw, "---------DIFFERENCES---------\n\n")
	for _, e := range res.Entries {
		writeEntry(bw, e)
		fmt.Fprintln(bw)
	}

	fmt.Fprint(bw, "---------DIFF SUMMARY---------\n")
	writeCounts(bw, res.Counts)

	fmt.Fprint(bw, "\n---------ONLY in EvtGen---------\n\n")
	for _, p := range res.RefOnlyListing {
		fmt.Fprintf(bw, "%d %s\n", p.ID, p.Name)
	}

	if len(res.Skipped) > 0 {
		fmt.Fprint(bw, "\n---------SKIPPED LINES---------\n\n")
		writeSkipped(bw, res.Skipped)
	}

	return bw.Flush()
}

// WriteEntry renders the block for a single particle.
func WriteEntry(w io.Writer, e reconcile.Entry) error {
	bw := bufio.NewWriter(w)
	writeEntry(bw, e)
	return bw.Flush()
}

// WriteSkipped lists the malformed lines that were skipped while loading.
func WriteSkipped(w io.Writer, skipped []*tables.ParseError) error {
	bw := bufio.NewWriter(w)
	writeSkipped(bw, skipped)
	return bw.Flush()
}

// WriteCounts renders the "M G C S" tally.
func WriteCounts(w io.Writer, c reconcile.Counts) error {
	bw := bufio.NewWriter(w)
	writeCounts(bw, c)
	return bw.Flush()
}

func writeEntry(w io.Writer, e reconcile.Entry) {
	fmt.Fprintf(w, "%d %s\n", e.ID, e.Name)
	if e.Mass != nil {
		writeVerdict(w, "mass:", *e.Mass)
	}
	if e.Width != nil {
		writeVerdict(w, "width:", *e.Width)
	}
	// Exact diffs print the reference value first.
	if e.Charge != nil {
		fmt.Fprintf(w, "%-8s %s %s\n", "charge:", FormatFloat(e.Charge.Reference), FormatFloat(e.Charge.Simulation))
	}
	if e.Spin != nil {
		fmt.Fprintf(w, "%-8s %s %s\n", "spin:", FormatFloat(e.Spin.Reference), FormatFloat(e.Spin.Simulation))
	}
}

func writeVerdict(w io.Writer, label string, v precision.Verdict) {
	fmt.Fprintf(w, "%-8s %s %s %s\n", label, VerdictText(v.Kind), FormatFloat(v.A), FormatFloat(v.B))
}

func writeCounts(w io.Writer, c reconcile.Counts) {
	fmt.Fprint(w, "M G C S\n")
	fmt.Fprintf(w, "%d %d %d %d\n", c.Mass, c.Width, c.Charge, c.Spin)
}

func writeSkipped(w io.Writer, skipped []*tables.ParseError) {
	for _, s := range skipped {
		fmt.Fprintf(w, "%s\n", s.Error())
	}
}

// FormatFloat prints v in its shortest round-trip form. Values between 1e-4 and
// 1e16 print in positional notation with at least one fractional digit, smaller
// and larger ones in exponent notation.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
