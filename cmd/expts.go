package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/photocat/gcsel/pkg/experiment"
)

// NewExptsCmd creates the `gcsel expts` command.
func NewExptsCmd() *cobra.Command {
	var exptsJSON bool

	cmd := &cobra.Command{
		Use:   "expts DIR",
		Short: "List reactor experiments found under a directory",
		Long:  `Walk a data directory for experiment logs and print each run's parameters.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expts, err := experiment.FindLogs(args[0])
			if err != nil {
				return err
			}

			if exptsJSON {
				return outputJSON(expts)
			}
			if len(expts) == 0 {
				fmt.Printf("No %s files found under %s\n", experiment.LogFileName, args[0])
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SAMPLE\tTYPE\tDATE\tTEMP (K)\tFLOW (SCCM)\tGASES")
			for _, e := range expts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					e.SampleName, e.ExptType, e.Date,
					joinFloats(e.Temps), joinFloats(e.TotalFlow),
					strings.Join(e.GasTypes, ","))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&exptsJSON, "json", false, "Output in JSON format")

	return cmd
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(parts, ",")
}
