package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"particle-audit/core/precision"
	"particle-audit/core/report"

	"github.com/spf13/cobra"
)

var compareValues bool

// precisionCmd prints the precision estimate of each value, or compares two values.
var precisionCmd = &cobra.Command{
	Use:   "precision [--compare] [--] VALUE...",
	Short: "Show the decimal precision estimated for values",
	Long: `Prints the estimated number of significant decimal places and the decimal
magnitude of every value. With --compare, exactly two values are compared the
way the report compares a RapidSim value (first) with an EvtGen value (second).

Negative values look like flags; put them after "--":

  particle-audit precision -- -0.5 1.25`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPrecision,
}

func init() {
	precisionCmd.Flags().BoolVar(&compareValues, "compare", false, "Compare two values and print the verdict")
	RootCmd.AddCommand(precisionCmd)
}

func runPrecision(cmd *cobra.Command, args []string) error {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values[i] = v
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	if compareValues {
		if len(values) != 2 {
			return fmt.Errorf("--compare needs exactly two values, got %d", len(values))
		}
		v := precision.Compare(values[0], values[1])
		fmt.Fprintln(w, "RS\tEG\tSCALES\tTHRESHOLD\tDIFF\tVERDICT")
		fmt.Fprintf(w, "%s\t%s\t%d/%d\t%g\t%g\t%s\n",
			report.FormatFloat(v.A), report.FormatFloat(v.B),
			v.ScaleA, v.ScaleB,
			precision.Threshold(v.ScaleA, v.ScaleB), v.Diff(),
			report.VerdictText(v.Kind))
		return w.Flush()
	}

	fmt.Fprintln(w, "VALUE\tESTIMATE\tMAGNITUDE")
	for _, v := range values {
		fmt.Fprintf(w, "%s\t%d\t%d\n", report.FormatFloat(v), precision.Estimate(v), precision.Magnitude(v))
	}
	return w.Flush()
}
