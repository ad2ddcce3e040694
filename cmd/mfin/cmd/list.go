package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mFIN/foundation/utils/mathx"
	"github.com/msto63/mFIN/internal/catalog"
	"github.com/msto63/mFIN/internal/tui/menu"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the calculations the inputs allow",
		Long: `Lists every calculation whose required inputs are all present.
When nothing can be calculated the closest calculations are shown
together with the fields they still need.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			names := a.session.ListComputable()
			if len(names) == 0 {
				fmt.Fprintln(out, "Nothing can be calculated yet.")
				return printSuggestions(cmd, a)
			}
			fmt.Fprintln(out, menu.HeaderStyle.Render("Calculations available"))
			for i, name := range names {
				fmt.Fprintf(out, "  %2d. %s\n", i+1, name)
			}
			return nil
		},
	}
}

func newSuggestCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "suggest",
		Aliases: []string{"closest"},
		Short:   "Shows the calculations closest to computable",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()
			return printSuggestions(cmd, a)
		},
	}
}

func printSuggestions(cmd *cobra.Command, a *app) error {
	matches, err := a.session.RankClosest()
	if err != nil {
		printError(cmd.ErrOrStderr(), "ranking failed", err)
		return err
	}

	out := cmd.OutOrStdout()
	if len(matches) == 0 {
		fmt.Fprintln(out, "No calculation uses the given inputs. Run 'mfin fields' to see them all.")
		return nil
	}
	fmt.Fprintln(out, menu.HeaderStyle.Render("Closest calculations"))
	for _, m := range matches {
		fmt.Fprintf(out, "  %s (%s present)\n", m.Name, mathx.FormatPercent(mathx.RoundTo(m.Fraction, 4)))
		if len(m.Missing) > 0 {
			fmt.Fprintf(out, "      missing: %s\n", menu.MissingStyle.Render(catalog.NameList(m.Missing)))
		}
	}
	return nil
}
