package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	latest "github.com/tcnksm/go-latest"
)

// Set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

// NewVersionCmd creates the `gcsel version` command.
func NewVersionCmd() *cobra.Command {
	var (
		versionJSON  bool
		versionCheck bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if versionJSON {
				return outputJSON(map[string]string{
					"version": Version,
					"commit":  Commit,
				})
			}

			fmt.Printf("gcsel %s (%s)\n", Version, Commit)

			if versionCheck {
				githubTag := &latest.GithubTag{
					Owner:      "photocat",
					Repository: "gcsel",
				}
				res, err := latest.Check(githubTag, Version)
				if err != nil {
					return fmt.Errorf("release check failed: %w", err)
				}
				if res.Outdated {
					fmt.Printf("A newer release is available: %s\n", res.Current)
				} else {
					fmt.Println("You are on the latest release")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&versionJSON, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&versionCheck, "check", false, "check GitHub for a newer release")

	return cmd
}
