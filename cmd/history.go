package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/photocat/gcsel/cmd/config"
	"github.com/photocat/gcsel/pkg/history"
)

// NewHistoryCmd creates the `gcsel history` command.
func NewHistoryCmd() *cobra.Command {
	var (
		histJSON  bool
		histLimit int
		histClear bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past accepted selections",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Open(config.HistoryDBPath())
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			if histClear {
				if err := store.Clear(); err != nil {
					return err
				}
				fmt.Println("Selection history cleared")
				return nil
			}

			runs, err := store.ListRuns(histLimit)
			if err != nil {
				return err
			}
			if histJSON {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Println("No selections recorded yet")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ACCEPTED\tROOT\tPATH\tLABEL")
			for _, run := range runs {
				when := run.AcceptedAt.Local().Format("2006-01-02 15:04")
				if len(run.Pairs) == 0 {
					fmt.Fprintf(w, "%s\t%s\t(empty)\t\n", when, run.Root)
					continue
				}
				for i, p := range run.Pairs {
					if i > 0 {
						when = ""
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", when, run.Root, p.Path, p.Label)
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&histJSON, "json", false, "Output in JSON format")
	cmd.Flags().IntVarP(&histLimit, "limit", "n", 10, "number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&histClear, "clear", false, "delete all recorded selections")

	return cmd
}
