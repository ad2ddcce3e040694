package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mFIN/internal/catalog"
	"github.com/msto63/mFIN/internal/tui/menu"
)

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields [category]",
		Short: "Lists the input fields by category",
		Long: `Lists every input field with its kind and entry hint, grouped by
the menu categories. A category name limits the output to that category.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			shown := 0
			for _, c := range catalog.Categories() {
				if len(args) == 1 && !strings.EqualFold(args[0], c.Name) {
					continue
				}
				shown++
				fmt.Fprintln(out, menu.HeaderStyle.Render(c.Name))
				for _, f := range c.Fields {
					fmt.Fprintf(out, "  %-26s %-11s %s\n", f.Name(), f.Kind(), f.Spec().Prompt)
				}
				fmt.Fprintln(out)
			}
			if shown == 0 {
				return fmt.Errorf("unknown category %q", args[0])
			}
			if len(args) == 0 {
				fmt.Fprintf(out, "Compound methods: %s\n", strings.Join(catalog.MethodNames(), ", "))
			}
			return nil
		},
	}
}
