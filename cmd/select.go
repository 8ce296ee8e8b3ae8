package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/photocat/gcsel/cmd/config"
	"github.com/photocat/gcsel/internal/tui/dirpick"
	"github.com/photocat/gcsel/internal/tui/picker"
	"github.com/photocat/gcsel/pkg/history"
	"github.com/photocat/gcsel/pkg/options"
	"github.com/photocat/gcsel/pkg/scan"
	"github.com/photocat/gcsel/pkg/session"
)

// argsThenTUIPrompter serves positional roots for the first prompt and falls
// back to the interactive prompt when the user cancels and rescans.
type argsThenTUIPrompter struct {
	roots []string
	used  bool
}

func (p *argsThenTUIPrompter) SelectDirectories(startingDir string) ([]string, error) {
	if !p.used && len(p.roots) > 0 {
		p.used = true
		return p.roots, nil
	}
	return dirpick.Prompter{}.SelectDirectories(startingDir)
}

// NewSelectCmd creates the `gcsel select` command, the interactive dataset
// selection flow.
func NewSelectCmd() *cobra.Command {
	var (
		selTarget    string
		selSuffix    string
		selDepth     int
		selJSON      bool
		selYAML      bool
		selOutput    string
		selNoHistory bool
		selOpts      []string
	)

	cmd := &cobra.Command{
		Use:   "select [DIR...]",
		Short: "Interactively pick and label datasets for plotting",
		Long: `Scan directories for dataset files, then pick the experiments to plot in a
checkable tree and attach a free-text label to each one.

With no directories given, an interactive prompt asks for them first.
Cancelling the tree view returns to the directory prompt; quitting ends the
flow without output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("select requires an interactive terminal")
			}

			logger := config.NewLogger()
			cfg := config.SessionConfig()
			if cmd.Flags().Changed("target") {
				cfg.Target = selTarget
			}
			if cmd.Flags().Changed("suffix") {
				cfg.Suffix = selSuffix
			}
			if cmd.Flags().Changed("depth") {
				cfg.Depth = selDepth
			}

			plotOpts, err := collectPlotOptions(selOpts)
			if err != nil {
				return err
			}

			sess := session.New(cfg, &argsThenTUIPrompter{roots: args}, scan.ListMatchingFiles, logger)

			for {
				if err := sess.Scan(); err != nil {
					if errors.Is(err, session.ErrNoDirectorySelected) {
						return fmt.Errorf("no directories selected, nothing to scan")
					}
					return err
				}

				m := picker.New(sess.Tree(), sess.Root())
				p := tea.NewProgram(m, tea.WithAltScreen())
				final, err := p.Run()
				if err != nil {
					return fmt.Errorf("error running picker: %w", err)
				}

				switch final.(picker.Model).Outcome() {
				case picker.OutcomeAccepted:
					pairs, err := sess.Accept()
					if err != nil {
						return err
					}
					if !selNoHistory {
						if err := recordHistory(sess.Root(), pairs); err != nil {
							logger.WithError(err).Warn("could not record selection history")
						}
					}
					if selOutput != "" {
						if err := writeSelectionFile(selOutput, sess.Root(), pairs, plotOpts); err != nil {
							return err
						}
					}
					return printPairs(pairs, selJSON, selYAML)

				case picker.OutcomeCancelled:
					// Re-prompt for a fresh directory set.
					sess.Cancel()

				default:
					return nil
				}
			}
		},
	}

	cmd.Flags().StringVar(&selTarget, "target", "", "substring a file name must contain")
	cmd.Flags().StringVar(&selSuffix, "suffix", "", "file extension to match")
	cmd.Flags().IntVar(&selDepth, "depth", 0, "directory levels between data files and the paths returned")
	cmd.Flags().BoolVar(&selJSON, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&selYAML, "yaml", false, "Output in YAML format")
	cmd.Flags().StringVarP(&selOutput, "output", "o", "", "write the selection to a YAML file")
	cmd.Flags().BoolVar(&selNoHistory, "no-history", false, "do not record the selection in history")
	cmd.Flags().StringArrayVar(&selOpts, "opt", nil, "plotting option as name=value (repeatable)")

	return cmd
}

// collectPlotOptions applies name=value assignments to the standard plot
// option set and marks each assigned option as included.
func collectPlotOptions(assignments []string) (*options.List, error) {
	list := options.NewPlotOptions()
	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --opt %q, expected name=value", a)
		}
		o, found := list.Get(name)
		if !found {
			return nil, fmt.Errorf("unknown plotting option %q", name)
		}
		if err := o.SetFromString(value); err != nil {
			return nil, err
		}
		o.Include = true
	}
	return list, nil
}

func recordHistory(root string, pairs []session.Pair) error {
	store, err := history.Open(config.HistoryDBPath())
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.RecordRun(root, pairs)
	return err
}

// selectionFile is the on-disk shape of an accepted selection.
type selectionFile struct {
	Root    string            `yaml:"root"`
	Pairs   []session.Pair    `yaml:"datasets"`
	Options map[string]string `yaml:"options,omitempty"`
}

func writeSelectionFile(path, root string, pairs []session.Pair, opts *options.List) error {
	out := selectionFile{Root: root, Pairs: pairs}
	if included := opts.Included(); len(included) > 0 {
		out.Options = make(map[string]string, len(included))
		for _, o := range included {
			out.Options[o.Name] = o.Value.String()
		}
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func printPairs(pairs []session.Pair, asJSON, asYAML bool) error {
	if asJSON {
		return outputJSON(pairs)
	}
	if asYAML {
		data, err := yaml.Marshal(pairs)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	if len(pairs) == 0 {
		fmt.Println("Nothing selected")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tLABEL")
	for _, p := range pairs {
		fmt.Fprintf(w, "%s\t%s\n", p.Path, p.Label)
	}
	return w.Flush()
}
