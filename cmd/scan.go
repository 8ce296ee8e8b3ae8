package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/photocat/gcsel/pkg/scan"
)

// NewScanCmd creates the `gcsel scan` command.
func NewScanCmd() *cobra.Command {
	var (
		scanTarget string
		scanSuffix string
		scanJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "scan DIR...",
		Short: "List dataset files under one or more directories",
		Long: `Recursively scan directories for dataset files whose name contains the
target substring and ends with the suffix.

Examples:
  gcsel scan ~/reactions                   # find avg_conc*.csv files
  gcsel scan --target cal --suffix .xlsx ~/calibrations`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := scanTarget
			if !cmd.Flags().Changed("target") {
				target = viper.GetString("target")
			}
			suffix := scanSuffix
			if !cmd.Flags().Changed("suffix") {
				suffix = viper.GetString("suffix")
			}

			files, err := scan.ListMatchingFiles(args, target, suffix)
			if err != nil {
				return err
			}

			if scanJSON {
				return outputJSON(files)
			}
			if len(files) == 0 {
				fmt.Printf("No files matching %q with suffix %q found\n", target, suffix)
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tPATH")
			for i, f := range files {
				fmt.Fprintf(w, "%d\t%s\n", i+1, f)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&scanTarget, "target", "", "substring a file name must contain")
	cmd.Flags().StringVar(&scanSuffix, "suffix", "", "file extension to match")
	cmd.Flags().BoolVar(&scanJSON, "json", false, "Output in JSON format")

	return cmd
}

func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
