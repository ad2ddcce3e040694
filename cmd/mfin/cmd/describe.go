package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mFIN/internal/tui/menu"
)

func newDescribeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <calculation>",
		Short: "Shows the inputs a calculation needs",
		Long: `Shows the required input fields of a calculation, which of them are
already present and the kind of result it produces.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			d, err := a.session.Describe(strings.Join(args, " "))
			if err != nil {
				return err
			}

			present := a.session.Inputs()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, menu.HeaderStyle.Render(d.Name)+"  "+menu.SubHeaderStyle.Render(d.Title))
			fmt.Fprintf(out, "Result: %s\n", d.Result)
			fmt.Fprintln(out, "Requires:")
			for _, f := range d.Requires {
				mark := "[ ]"
				if present.Has(f.Field) {
					mark = "[x]"
				}
				fmt.Fprintf(out, "  %s %-26s %s\n", mark, f.Name, f.Kind)
			}
			return nil
		},
	}
}
