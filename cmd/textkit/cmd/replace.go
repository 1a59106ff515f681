package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

func newReplaceCmd(a *app) *cobra.Command {
	var (
		first      bool
		condition  bool
		comparison string
	)

	cmd := &cobra.Command{
		Use:   "replace <text> <old> [new]",
		Short: "Replace occurrences of old; without new they are removed",
		Args:  cobra.RangeArgs(2, 3),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			cmp, err := stringx.ParseComparison(comparison)
			if err != nil {
				return err
			}
			text, err := input(cmd, args, 0)
			if err != nil {
				return err
			}

			old, replacement := args[1], optionalArg(args, 2)
			var out string
			switch {
			case first && condition:
				out = stringx.ReplaceFirstMode(text, old, replacement, cmp)
			case first:
				out = text
			case len(args) == 2 && condition && cmp == stringx.Ordinal:
				out = stringx.ReplaceEmpty(text, old)
			default:
				out = stringx.ReplaceIfMode(text, condition, old, replacement, cmp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&first, "first", false, "replace only the first occurrence")
	cmd.Flags().BoolVar(&condition, "if", true, "perform the replacement only when true")
	comparisonFlag(cmd, &comparison)
	return cmd
}

func newRemoveLastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-last <text> <value>",
		Short: "Remove the last occurrence of value",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args, 0)
			if err != nil {
				return err
			}
			out, err := stringx.RemoveAtLast(text, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}),
	}
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
