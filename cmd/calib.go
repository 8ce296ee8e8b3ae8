package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/photocat/gcsel/pkg/calibration"
)

// NewCalibCmd creates the `gcsel calib` command.
func NewCalibCmd() *cobra.Command {
	var calibJSON bool

	cmd := &cobra.Command{
		Use:   "calib FILE",
		Short: "Show a GC calibration table",
		Long: `Load a gas chromatograph calibration file (.csv or .xlsx) and print the
linear response fit for each chemical.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := calibration.LoadFile(args[0])
			if err != nil {
				return err
			}

			if calibJSON {
				return outputJSON(table.Entries())
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CHEM ID\tSLOPE\tINTERCEPT\tSTART (PPM)\tEND (PPM)")
			for _, e := range table.Entries() {
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\n", e.ChemID, e.Slope, e.Intercept, e.Start, e.End)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&calibJSON, "json", false, "Output in JSON format")

	return cmd
}
