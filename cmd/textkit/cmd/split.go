package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

func newSplitCmd(a *app) *cobra.Command {
	var (
		separators  []string
		removeEmpty bool
		trim        bool
	)

	cmd := &cobra.Command{
		Use:   "split <text>",
		Short: "Split text on one or more separators, one part per line",
		Long: `Split text on the given separators. At each position the first
separator in flag order that matches wins. Without separators the text is
split on whitespace.`,
		Args: cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args, 0)
			if err != nil {
				return err
			}

			opts := stringx.SplitNone
			if removeEmpty {
				opts |= stringx.SplitRemoveEmpty
			}
			if trim {
				opts |= stringx.SplitTrimEntries
			}
			printLines(cmd.OutOrStdout(), stringx.SplitAny(text, opts, separators...))
			return nil
		}),
	}

	cmd.Flags().StringArrayVarP(&separators, "separator", "s", nil, "separator (repeatable)")
	cmd.Flags().BoolVar(&removeEmpty, "remove-empty", false, "drop empty parts")
	cmd.Flags().BoolVar(&trim, "trim", false, "trim whitespace around parts")
	return cmd
}

func newChunkCmd(a *app) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "chunk <text>",
		Short: "Cut text into chunks of a fixed number of characters",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args, 0)
			if err != nil {
				return err
			}
			chunks, err := stringx.SubstringAtCount(text, size)
			if err != nil {
				return err
			}
			printLines(cmd.OutOrStdout(), chunks)
			return nil
		}),
	}

	cmd.Flags().IntVarP(&size, "size", "n", 1, "characters per chunk")
	return cmd
}

func newCharsCmd(a *app) *cobra.Command {
	var graphemes bool

	cmd := &cobra.Command{
		Use:   "chars <text>",
		Short: "Print each character on its own line",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args, 0)
			if err != nil {
				return err
			}
			if graphemes {
				printLines(cmd.OutOrStdout(), stringx.SplitByGrapheme(text))
			} else {
				printLines(cmd.OutOrStdout(), stringx.SplitByOneCharacter(text))
			}
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&graphemes, "graphemes", "g", false, "split on user-perceived characters")
	return cmd
}
