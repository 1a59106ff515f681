package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

func newCamelCmd(a *app) *cobra.Command {
	var lower bool

	cmd := &cobra.Command{
		Use:   "camel <snake_case>",
		Short: "Convert snake_case to UpperCamelCase",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args, 0)
			if err != nil {
				return err
			}
			if lower {
				fmt.Fprintln(cmd.OutOrStdout(), stringx.SnakeToLowerCamel(text))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), stringx.SnakeToUpperCamel(text))
			}
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&lower, "lower", "l", false, "produce lowerCamelCase")
	return cmd
}

func newPathCmd(a *app) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "path <path>",
		Short: "Convert path separators",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			path, err := input(cmd, args, 0)
			if err != nil {
				return err
			}
			switch strings.ToLower(target) {
			case "windows":
				fmt.Fprintln(cmd.OutOrStdout(), stringx.ToWindowsPath(path))
			case "mac", "unix":
				fmt.Fprintln(cmd.OutOrStdout(), stringx.ToMacPath(path))
			default:
				return errors.InvalidArgument("cmd", "path", target, "windows or mac")
			}
			return nil
		}),
	}

	cmd.Flags().StringVarP(&target, "to", "t", "mac", "target style: windows or mac")
	return cmd
}

func newSjisCmd(a *app) *cobra.Command {
	var (
		hex    bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "sjis <text>",
		Short: "Project text onto the Shift_JIS repertoire",
		Long: `Round-trip text through Shift_JIS when editor mode is enabled
(--editor-mode, encoding.editor_mode or TEXTKIT_EDITOR_MODE). Otherwise the
text is printed unchanged. Characters without a Shift_JIS mapping become '?'.`,
		Args: cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args, 0)
			if err != nil {
				return err
			}

			if strict {
				if n := unmappable(text); n > 0 {
					return mdwerror.Newf("text contains %d character(s) outside Shift_JIS", n).
						WithCode(mdwerror.CodeEncodingError).
						WithOperation("cmd.sjis").
						WithDetail("count", n)
				}
			}

			if hex {
				fmt.Fprintf(cmd.OutOrStdout(), "% X\n", stringx.EncodeShiftJIS(text))
				return nil
			}

			mode := stringx.EncodingModeFromFlag(a.settings.Encoding.EditorMode)
			a.logger.Debug("converting text", log.Fields{"mode": mode.String()})
			fmt.Fprintln(cmd.OutOrStdout(), stringx.ToShiftJIS(text, mode))
			return nil
		}),
	}

	cmd.Flags().BoolVar(&hex, "hex", false, "print the Shift_JIS bytes in hex")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a character has no Shift_JIS mapping")
	return cmd
}

// unmappable counts the runes of text that do not survive a Shift_JIS round trip
func unmappable(text string) int {
	n := 0
	for _, r := range text {
		if stringx.ToShiftJIS(string(r), stringx.EncodingEditor) != string(r) {
			n++
		}
	}
	return n
}

func newEscapeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "escape <text>",
		Short: "Escape regular expression metacharacters",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args, 0)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.Escape(text))
			return nil
		}),
	}
}

func newUnescapeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unescape <text>",
		Short: "Resolve escape sequences",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args, 0)
			if err != nil {
				return err
			}
			out, err := stringx.Unescape(text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}),
	}
}

func newStripNewlinesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strip-newlines <text>",
		Short: "Remove all carriage returns and line feeds",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args, 0)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.RemoveNewLine(text))
			return nil
		}),
	}
}

func newExtCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ext <name> <extension>",
		Short: "Append an extension unless the name already ends with it",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), stringx.SafeAddExtension(args[0], args[1]))
			return nil
		}),
	}
}
