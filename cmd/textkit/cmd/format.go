package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

func newFormatCmd(a *app) *cobra.Command {
	var literal bool

	cmd := &cobra.Command{
		Use:   "format <template> [args...]",
		Short: "Fill {index[,alignment][:format]} placeholders",
		Example: `  textkit format "{0} has {1,3} items" cart 7
  textkit format "{0:N2}" 1234567.891`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			template, err := input(cmd, args, 0)
			if err != nil {
				return err
			}

			numeric := formattedIndexes(template)
			values := make([]interface{}, 0, len(args)-1)
			for i, arg := range args[1:] {
				if literal || !numeric[i] {
					values = append(values, arg)
				} else {
					values = append(values, typedArg(arg))
				}
			}

			out, err := stringx.FormatWith(template, values...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&literal, "literal", false, "pass all arguments as text")
	return cmd
}

// formattedIndexes returns the argument indexes referenced by a placeholder
// with a format component, as in "{1:N2}". Malformed placeholders are
// skipped; FormatWith reports them.
func formattedIndexes(template string) map[int]bool {
	indexes := make(map[int]bool)
	for i := 0; i < len(template); i++ {
		if template[i] != '{' {
			continue
		}
		if i+1 < len(template) && template[i+1] == '{' {
			i++
			continue
		}
		end := strings.IndexByte(template[i+1:], '}')
		if end < 0 {
			break
		}
		head, spec, _ := strings.Cut(template[i+1:i+1+end], ":")
		head, _, _ = strings.Cut(head, ",")
		if n, err := strconv.Atoi(strings.TrimSpace(head)); err == nil && spec != "" {
			indexes[n] = true
		}
		i += end + 1
	}
	return indexes
}

// typedArg turns numeric arguments into numbers so numeric format
// specifiers apply to them.
func typedArg(arg string) interface{} {
	if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return n
	}
	if f, err := cast.ToFloat64E(arg); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return arg
}

func newJoinCmd(a *app) *cobra.Command {
	var separator string

	cmd := &cobra.Command{
		Use:   "join [items...]",
		Short: "Join items with a separator",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			sep := separator
			if !cmd.Flags().Changed("separator") && a.settings.Join.Separator != "" {
				sep = a.settings.Join.Separator
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.ConcatWith(args, sep))
			return nil
		}),
	}

	cmd.Flags().StringVarP(&separator, "separator", "s", ",", "separator placed between items")
	return cmd
}

func newLimitCmd(a *app) *cobra.Command {
	var (
		maxLength int
		suffix    string
	)

	cmd := &cobra.Command{
		Use:   "limit <text>",
		Short: "Truncate text to a maximum number of characters",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args, 0)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.Limit(text, maxLength, suffix))
			return nil
		}),
	}

	cmd.Flags().IntVarP(&maxLength, "max", "m", 80, "maximum length in characters")
	cmd.Flags().StringVar(&suffix, "suffix", "...", "suffix appended when truncated")
	return cmd
}

func newRepeatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repeat <text> <count>",
		Short: "Repeat text count times",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args, 0)
			if err != nil {
				return err
			}
			count, err := intArg("count", args[1])
			if err != nil {
				return err
			}
			out, err := stringx.Repeat(text, count)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}),
	}
}
