package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

func newContainsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contains <text> <candidate>...",
		Short: "Report whether text contains any candidate",
		Args:  cobra.MinimumNArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args, 0)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.ContainsAny(text, args[1:]...))
			return nil
		}),
	}
}

func newStartsWithCmd(a *app) *cobra.Command {
	var comparison string

	cmd := &cobra.Command{
		Use:   "startswith <text> <prefix>...",
		Short: "Report whether text starts with any prefix",
		Args:  cobra.MinimumNArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			cmp, err := stringx.ParseComparison(comparison)
			if err != nil {
				return err
			}
			text, err := input(cmd, args, 0)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.StartsWithAnyMode(text, args[1:], cmp))
			return nil
		}),
	}

	comparisonFlag(cmd, &comparison)
	return cmd
}

func newCaseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "case <text>",
		Short: "Report whether text is all lower or all upper case",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args, 0)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "lower: %t\nupper: %t\n", stringx.IsLower(text), stringx.IsUpper(text))
			return nil
		}),
	}
}

func newBlankCmd(a *app) *cobra.Command {
	var fallback string

	cmd := &cobra.Command{
		Use:   "blank <text>",
		Short: "Report whether text is empty or whitespace",
		Long: `Without --default, print whether text is empty and whether it is
blank. With --default, print text unless it is blank, else the default.`,
		Args: cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args, 0)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("default") {
				fmt.Fprintln(cmd.OutOrStdout(), stringx.GetIfNotNullOrWhiteSpace(text, fallback))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "empty: %t\nblank: %t\n",
				stringx.IsNullOrEmpty(text), stringx.IsNullOrWhiteSpace(text))
			return nil
		}),
	}

	cmd.Flags().StringVarP(&fallback, "default", "d", "", "value printed when text is blank")
	return cmd
}
