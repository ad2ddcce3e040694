package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/mFIN/internal/tui/menu"
)

// rootOptions holds the flags shared by all commands
type rootOptions struct {
	cfgFile     string
	verbose     bool
	inputsFile  string
	assignments []string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "mfin",
		Short: "mFIN - Financial Calculation Dispatcher",
		Long: `mFIN collects financial inputs and runs every calculation they make
possible: time value of money, loans, bonds, term structure,
portfolio optimisation and investment returns.

Without a subcommand the interactive menu is started.

Inputs:
  --inputs scenario.yaml    pre-fill inputs from a scenario file
  --set "Field Name=value"  set one input (repeatable)`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "Config file (default: $MFIN_CONFIG or ./configs/config.toml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	flags.StringVar(&opts.inputsFile, "inputs", "", "Scenario YAML file with inputs")
	flags.StringArrayVar(&opts.assignments, "set", nil, `Input assignment "Field Name=value"`)

	rootCmd.AddCommand(
		newFieldsCmd(),
		newListCmd(opts),
		newSuggestCmd(opts),
		newDescribeCmd(opts),
		newCalcCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command line
func Execute() error {
	return newRootCmd().Execute()
}

func runMenu(opts *rootOptions) error {
	a, err := newApp(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	p := tea.NewProgram(
		menu.New(menu.Config{
			Session:     a.session,
			Formatter:   a.formatter,
			Logger:      a.logger,
			ShowDetails: a.cfg.Display.ShowDetails,
		}),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		a.logger.LogError(err)
		return err
	}
	return nil
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "Error: %s: %v\n", msg, err)
}
