package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mFIN/internal/catalog"
	"github.com/msto63/mFIN/internal/dispatch"
)

func newCalcCmd(opts *rootOptions) *cobra.Command {
	var showInputs bool

	calcCmd := &cobra.Command{
		Use:     "calc <calculation>",
		Aliases: []string{"run", "invoke"},
		Short:   "Runs a calculation on the given inputs",
		Long: `Runs a calculation on the inputs given with --inputs and --set.

Example:
  mfin calc "Future Value" --set "Present Value=1,000" --set "Interest Rate=5%" \
      --set "Periods=10" --set "Compound Method=Annual"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			name := strings.Join(args, " ")
			spec, err := a.session.Spec(name)
			if err != nil {
				return err
			}

			result, err := a.session.Invoke(spec.Name)
			if err != nil {
				if mf, ok := dispatch.AsMissingFields(err); ok {
					printError(cmd.ErrOrStderr(), spec.Name+" needs more input",
						fmt.Errorf("missing %s", catalog.NameList(mf.Missing)))
				}
				return err
			}

			if !a.cfg.Display.ShowDetails {
				result.Details = nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.formatter.Result(spec, result))
			if showInputs {
				fmt.Fprintln(out)
				fmt.Fprintln(out, a.formatter.Inputs(a.session.Inputs()))
			}
			return nil
		},
	}

	calcCmd.Flags().BoolVar(&showInputs, "show-inputs", false, "Print the inputs after the result")
	return calcCmd
}
