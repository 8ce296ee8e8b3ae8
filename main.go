package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/photocat/gcsel/cmd"
	"github.com/photocat/gcsel/cmd/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gcsel",
		Short: "Select and label photocatalysis reactor datasets for analysis",
		Long: `gcsel scans reactor data directories for gas chromatograph result files,
presents them as a checkable tree truncated to the experiment level, and
turns the checked entries into labeled dataset paths for downstream
plotting and analysis.`,
		SilenceUsage: true,
	}

	cobra.OnInitialize(config.InitConfig)
	config.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(cmd.NewSelectCmd())
	rootCmd.AddCommand(cmd.NewScanCmd())
	rootCmd.AddCommand(cmd.NewHistoryCmd())
	rootCmd.AddCommand(cmd.NewCalibCmd())
	rootCmd.AddCommand(cmd.NewExptsCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
