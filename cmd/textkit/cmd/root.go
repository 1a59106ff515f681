package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/config"
	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

// app carries the state resolved before a command runs
type app struct {
	settings *config.Settings
	logger   *log.Logger
	timer    *log.Timer
}

// NewRootCmd builds the textkit command tree
func NewRootCmd() *cobra.Command {
	a := &app{settings: config.Default(), logger: log.Discard()}

	var (
		cfgFile    string
		verbose    bool
		editorMode bool
	)

	rootCmd := &cobra.Command{
		Use:   "textkit",
		Short: "textkit - string utilities on the command line",
		Long: `textkit exposes the stringx helpers as commands.

Every command prints its result to stdout. Arguments given as "-" are read
from stdin. Configuration is read from --config, $TEXTKIT_CONFIG or the
first textkit.{toml,yaml,yml} found in ., ./configs and ~/.config/textkit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadFromEnv(cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("editor-mode") {
				settings.Encoding.EditorMode = editorMode
			}

			logConfig := settings.LoggerConfig()
			logConfig.Output = cmd.ErrOrStderr()
			if verbose {
				logConfig.Level = log.LevelDebug
			}

			a.settings = settings
			a.logger = log.NewWithConfig(logConfig)
			a.timer = a.logger.StartTimer(cmd.CommandPath())
			a.logger.Debug("executing command", log.Fields{
				"command":     cmd.CommandPath(),
				"args":        len(args),
				"editor_mode": settings.Encoding.EditorMode,
			})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.timer != nil {
				a.timer.Stop()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: discovered textkit.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&editorMode, "editor-mode", false, "round-trip text through Shift_JIS in sjis")

	rootCmd.AddCommand(
		newFormatCmd(a),
		newJoinCmd(a),
		newLimitCmd(a),
		newRepeatCmd(a),
		newSplitCmd(a),
		newChunkCmd(a),
		newCharsCmd(a),
		newCamelCmd(a),
		newPathCmd(a),
		newContainsCmd(a),
		newStartsWithCmd(a),
		newSjisCmd(a),
		newEscapeCmd(a),
		newUnescapeCmd(a),
		newReplaceCmd(a),
		newRemoveLastCmd(a),
		newStripNewlinesCmd(a),
		newCaseCmd(a),
		newBlankCmd(a),
		newExtCmd(a),
		newVersionCmd(),
	)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return mdwerror.Wrap(err, "invalid flags").WithCode(mdwerror.CodeInvalidArgument)
	})

	return rootCmd
}

// Execute runs the command tree against the process arguments
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

// run wraps a command body so failures are logged with their error fields
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			fields := log.Fields{"command": cmd.CommandPath()}
			if mdwerror.GetSeverity(err).ShouldAlert() {
				a.logger.WithError(err).Error("command failed", fields)
			} else {
				a.logger.WithError(err).Warn("command failed", fields)
			}
			return err
		}
		return nil
	}
}

// input returns args[i], reading stdin when it is "-"
func input(cmd *cobra.Command, args []string, i int) (string, error) {
	if args[i] != "-" {
		return args[i], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.OperationFailed("cmd", "read_stdin", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// intArg parses a decimal integer argument
func intArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.InvalidArgument("cmd", name, value, "a decimal integer")
	}
	return n, nil
}

// printLines writes each value on its own line
func printLines(w io.Writer, values []string) {
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
}

// comparisonFlag registers --comparison on cmd
func comparisonFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "comparison", "c", stringx.Ordinal.String(),
		"ordinal, ordinal-ignore-case, culture or culture-ignore-case")
}
