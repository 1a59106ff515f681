// File: logger_test.go
// Title: Logger Tests
// Description: Tests for levels, formats, fields and error integration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-15

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestLoggerLevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf, Name: "textkit"})

	logger.Debug("hidden")
	logger.WithField("command", "limit").Info("done", Fields{"runes": 3})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "done", lines[0]["msg"])
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "textkit", lines[0]["logger"])
	assert.Equal(t, "limit", lines[0]["command"])
	assert.Equal(t, float64(3), lines[0]["runes"])

	assert.False(t, logger.IsLevelEnabled(LevelDebug))
	assert.True(t, logger.IsLevelEnabled(LevelError))
}

func TestLoggerWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Output: &buf})

	err := mdwerror.New("negative count").
		WithCode(mdwerror.CodeInvalidArgument).
		WithOperation("stringx.repeat")
	logger.WithError(err).Error("command failed")
	logger.WithError(errors.New("plain")).Warn("plain failure")
	logger.WithError(nil).Info("no error")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)
	assert.Equal(t, "INVALID_ARGUMENT", lines[0]["error_code"])
	assert.Equal(t, "low", lines[0]["error_severity"])
	assert.Equal(t, "stringx.repeat", lines[0]["operation"])
	assert.Equal(t, "plain", lines[1]["error"])
	assert.NotContains(t, lines[1], "error_code")
	assert.NotContains(t, lines[2], "error")
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatText, Output: &buf})
	logger.Info("hello", Fields{"k": "v"})

	out := buf.String()
	assert.Contains(t, out, `msg=hello`)
	assert.Contains(t, out, `k=v`)
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Output: &buf})

	elapsed := logger.StartTimer("split").Stop(Fields{"parts": 2})
	assert.GreaterOrEqual(t, int64(elapsed), int64(0))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "split", lines[0]["operation"])
	assert.Equal(t, float64(2), lines[0]["parts"])
	assert.Contains(t, lines[0], "duration_ms")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nothing") })
}
