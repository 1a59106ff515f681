package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// execute runs the command tree with an isolated config file and returns
// stdout, stderr and the error.
func execute(t *testing.T, config string, stdin string, args ...string) (string, string, error) {
	t.Helper()
	return executeWithInput(t, config, strings.NewReader(stdin), args...)
}

func executeWithInput(t *testing.T, config string, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("TEXTKIT_EDITOR_MODE", "")
	t.Setenv("TEXTKIT_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "textkit.toml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(stdin)
	root.SetArgs(append([]string{"--config", path}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	out, _, err := execute(t, "", "", args...)
	require.NoError(t, err)
	return out
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"format", []string{"format", "{0} has {1,3} items", "cart", "7"}, "cart has   7 items\n"},
		{"format numeric", []string{"format", "{0:N2}", "1234567.891"}, "1,234,567.89\n"},
		{"format leading zero stays decimal", []string{"format", "{0:D4}", "08"}, "0008\n"},
		{"format literal", []string{"format", "--literal", "{0:D4}", "8"}, "8\n"},
		{"format plain placeholder keeps text", []string{"format", "{0}|{1}", "007", "1e3"}, "007|1e3\n"},
		{"format spec converts only its argument", []string{"format", "{0}|{1:N0}", "007", "1e3"}, "007|1,000\n"},
		{"format spec after escaped brace", []string{"format", "{{{0:D3}}}", "5"}, "{005}\n"},
		{"join", []string{"join", "-s", "-", "a", "b", "c"}, "a-b-c\n"},
		{"join default separator", []string{"join", "a", "b"}, "a,b\n"},
		{"limit", []string{"limit", "--max", "6", "Hello, world"}, "Hello,...\n"},
		{"repeat", []string{"repeat", "ab", "3"}, "ababab\n"},
		{"split", []string{"split", "-s", ",", "--trim", "--remove-empty", "a, ,b"}, "a\nb\n"},
		{"split whitespace", []string{"split", "x y"}, "x\ny\n"},
		{"chunk", []string{"chunk", "-n", "3", "abcdefg"}, "abc\ndef\ng\n"},
		{"chars", []string{"chars", "ピカ"}, "ピ\nカ\n"},
		{"camel", []string{"camel", "quoted_printable_encode"}, "QuotedPrintableEncode\n"},
		{"camel lower", []string{"camel", "-l", "quoted_printable_encode"}, "quotedPrintableEncode\n"},
		{"path windows", []string{"path", "--to", "windows", "temp/doc.txt"}, "temp\\doc.txt\n"},
		{"path mac", []string{"path", `temp\doc.txt`}, "temp/doc.txt\n"},
		{"contains", []string{"contains", "ピカチュウカイリュー", "ヤドラン", "ピジョン"}, "false\n"},
		{"startswith ignore case", []string{"startswith", "-c", "ordinal-ignore-case", "HELLO", "he"}, "true\n"},
		{"sjis passthrough", []string{"sjis", "😀a"}, "😀a\n"},
		{"sjis editor mode flag", []string{"--editor-mode", "sjis", "😀a"}, "?a\n"},
		{"sjis hex", []string{"sjis", "--hex", "アA"}, "83 41 41\n"},
		{"escape", []string{"escape", "a.b c"}, "a\\.b\\ c\n"},
		{"unescape", []string{"unescape", `\x41\t.`}, "A\t.\n"},
		{"replace all", []string{"replace", "a-b-c", "-", "+"}, "a+b+c\n"},
		{"replace remove", []string{"replace", "ABCABC", "B"}, "ACAC\n"},
		{"replace first", []string{"replace", "--first", "aXbXc", "X", "-"}, "a-bXc\n"},
		{"replace condition false", []string{"replace", "--if=false", "a-b", "-", "+"}, "a-b\n"},
		{"replace ignore case", []string{"replace", "-c", "ordinal-ignore-case", "Foo foo", "FOO", "x"}, "x x\n"},
		{"remove-last", []string{"remove-last", "a.b.c", "."}, "a.bc\n"},
		{"strip-newlines", []string{"strip-newlines", "a\r\nb"}, "ab\n"},
		{"case", []string{"case", "abc1"}, "lower: true\nupper: false\n"},
		{"blank", []string{"blank", "   "}, "empty: false\nblank: true\n"},
		{"blank default", []string{"blank", "-d", "fallback", " "}, "fallback\n"},
		{"ext", []string{"ext", "file", ".txt"}, "file.txt\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, run(t, tt.args...))
		})
	}
}

func TestStdinArgument(t *testing.T) {
	out, _, err := execute(t, "", "quoted_printable\n", "camel", "-")
	require.NoError(t, err)
	assert.Equal(t, "QuotedPrintable\n", out)
}

func TestConfigSettings(t *testing.T) {
	config := `
[encoding]
editor_mode = true

[join]
separator = " | "
`
	out, _, err := execute(t, config, "", "sjis", "한a")
	require.NoError(t, err)
	assert.Equal(t, "?a\n", out)

	out, _, err = execute(t, config, "", "join", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a | b\n", out)

	out, _, err = execute(t, config, "", "--editor-mode=false", "sjis", "한a")
	require.NoError(t, err)
	assert.Equal(t, "한a\n", out)
}

func TestEditorModeFromEnvironment(t *testing.T) {
	t.Setenv("TEXTKIT_EDITOR_MODE", "true")
	path := filepath.Join(t.TempDir(), "textkit.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	var stdout bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "sjis", "😀"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "?\n", stdout.String())
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		args     []string
		code     mdwerror.Code
		exitCode int
	}{
		{"negative repeat", "", []string{"repeat", "ab", "-1"}, mdwerror.CodeInvalidArgument, 2},
		{"non-numeric repeat", "", []string{"repeat", "ab", "x"}, mdwerror.CodeInvalidArgument, 2},
		{"zero chunk", "", []string{"chunk", "-n", "0", "abc"}, mdwerror.CodeInvalidArgument, 2},
		{"bad template", "", []string{"format", "{1}", "a"}, mdwerror.CodeInvalidFormat, 2},
		{"bad escape", "", []string{"unescape", `\q`}, mdwerror.CodeInvalidFormat, 2},
		{"absent value", "", []string{"remove-last", "abc", "x"}, mdwerror.CodeNotFound, 2},
		{"bad comparison", "", []string{"startswith", "-c", "binary", "a", "a"}, mdwerror.CodeInvalidArgument, 2},
		{"bad path style", "", []string{"path", "--to", "amiga", "a/b"}, mdwerror.CodeInvalidArgument, 2},
		{"strict sjis", "", []string{"sjis", "--strict", "😀"}, mdwerror.CodeEncodingError, 2},
		{"invalid config", "[log]\nlevel = \"loud\"\n", []string{"join", "a"}, mdwerror.CodeInvalidConfig, 3},
		{"unknown config key", "colour = true\n", []string{"join", "a"}, mdwerror.CodeInvalidConfig, 3},
		{"unknown flag", "", []string{"join", "--nope"}, mdwerror.CodeInvalidArgument, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.config, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, mdwerror.GetCode(err))
			assert.Equal(t, tt.exitCode, ExitCode(err))
		})
	}
}

func TestFailuresAreLogged(t *testing.T) {
	_, stderr, err := execute(t, "[log]\nformat = \"json\"\n", "", "repeat", "ab", "-1")
	require.Error(t, err)
	assert.Contains(t, stderr, `"msg":"command failed"`)
	assert.Contains(t, stderr, `"error_code":"INVALID_ARGUMENT"`)
	assert.Contains(t, stderr, `"level":"warning"`)
}

func TestStdinReadFailure(t *testing.T) {
	_, stderr, err := executeWithInput(t, "[log]\nformat = \"json\"\n",
		iotest.ErrReader(io.ErrUnexpectedEOF), "limit", "-")
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, mdwerror.CodeInternal, mdwerror.GetCode(err))
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, stderr, `"level":"error"`)
	assert.Contains(t, stderr, `"operation":"cmd.read_stdin"`)
}

func TestStrictShiftJISCountsCharacters(t *testing.T) {
	_, _, err := execute(t, "", "", "sjis", "--strict", "a😀b한")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 character(s) outside Shift_JIS")
	assert.Equal(t, mdwerror.CodeEncodingError, mdwerror.GetCode(err))

	out := run(t, "sjis", "--strict", "アイ")
	assert.Equal(t, "アイ\n", out)
}

func TestVerboseLogsCommand(t *testing.T) {
	_, stderr, err := execute(t, "", "", "--verbose", "ext", "a", ".b")
	require.NoError(t, err)
	assert.Contains(t, stderr, "executing command")
	assert.Contains(t, stderr, "operation completed")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(assert.AnError))
}

func TestVersion(t *testing.T) {
	out := run(t, "version")
	assert.Contains(t, out, "textkit v"+Version)
	assert.Contains(t, out, "Go Version:")
}
