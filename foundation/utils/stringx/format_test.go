// File: format_test.go
// Title: Unit Tests for Positional Formatting
// Description: Tests for FormatWith placeholders, alignment, numeric format
//              specifiers and template errors.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-15
// Modified: 2025-10-16
//
// Change History:
// - 2025-10-15 v0.1.0: Initial test implementation

package stringx

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/textkit/foundation/core/errors"
)

type temperature float64

func (t temperature) FormatText(format string) string {
	if format == "F" {
		return "fahrenheit"
	}
	return "celsius"
}

func TestFormatWith(t *testing.T) {
	stamp := time.Date(2025, time.October, 15, 9, 30, 0, 0, time.UTC)
	interval := 90 * time.Second

	tests := []struct {
		name     string
		format   string
		args     []interface{}
		expected string
	}{
		{"no placeholders", "plain text", nil, "plain text"},
		{"single placeholder", "Hello, {0}!", []interface{}{"world"}, "Hello, world!"},
		{"reordered placeholders", "{1} {0} {1}", []interface{}{"a", "b"}, "b a b"},
		{"right alignment", "{0} has {1,3} items", []interface{}{"cart", 7}, "cart has   7 items"},
		{"left alignment", "[{0,-5}]", []interface{}{"ab"}, "[ab   ]"},
		{"alignment counts runes", "[{0,4}]", []interface{}{"ピカ"}, "[  ピカ]"},
		{"alignment narrower than value", "[{0,2}]", []interface{}{"abcdef"}, "[abcdef]"},
		{"escaped braces", "{{{0}}}", []interface{}{1}, "{1}"},
		{"nil argument", "<{0}>", []interface{}{nil}, "<>"},
		{"bool argument", "{0}", []interface{}{true}, "true"},
		{"float argument", "{0}", []interface{}{1.5}, "1.5"},
		{"decimal padding", "{0:D5}", []interface{}{42}, "00042"},
		{"negative decimal padding", "{0:D3}", []interface{}{-7}, "-007"},
		{"fixed point", "{0:F3}", []interface{}{3.14159}, "3.142"},
		{"fixed point default precision", "{0:F}", []interface{}{2}, "2.00"},
		{"grouped number", "{0:N2}", []interface{}{1234567.891}, "1,234,567.89"},
		{"grouped integer", "{0:N0}", []interface{}{1234}, "1,234"},
		{"upper hex", "{0:X}", []interface{}{255}, "FF"},
		{"lower hex with width", "{0:x4}", []interface{}{255}, "00ff"},
		{"negative hex uses type width", "{0:X}", []interface{}{int8(-1)}, "FF"},
		{"time layout", "{0:2006-01-02}", []interface{}{stamp}, "2025-10-15"},
		{"spec ignored for text", "{0:Q}", []interface{}{"x"}, "x"},
		{"formattable", "{0:F}/{0}", []interface{}{temperature(20)}, "fahrenheit/celsius"},
		{"spec and alignment", "{0,6:F1}", []interface{}{2.34}, "   2.3"},
		{"nil pointer argument", "<{0}>", []interface{}{(*time.Duration)(nil)}, "<>"},
		{"nil pointer argument with spec", "<{0:N2}>", []interface{}{(*time.Duration)(nil)}, "<>"},
		{"nil slice argument", "<{0}>", []interface{}{[]int(nil)}, "<>"},
		{"duration pointer argument", "{0}", []interface{}{&interval}, "1m30s"},
		{"grouped max int64", "{0:N0}", []interface{}{int64(math.MaxInt64)}, "9,223,372,036,854,775,807"},
		{"grouped min int64", "{0:N0}", []interface{}{int64(math.MinInt64)}, "-9,223,372,036,854,775,808"},
		{"grouped max uint64", "{0:N0}", []interface{}{uint64(math.MaxUint64)}, "18,446,744,073,709,551,615"},
		{"grouped integer beyond float precision", "{0:N0}", []interface{}{int64(9007199254740993)}, "9,007,199,254,740,993"},
		{"grouped integer with fraction", "{0:N3}", []interface{}{-5}, "-5.000"},
		{"grouped large float", "{0:N0}", []interface{}{1e20}, "100,000,000,000,000,000,000"},
		{"grouped large float with fraction", "{0:N2}", []interface{}{1e19}, "10,000,000,000,000,000,000.00"},
		{"grouped negative fraction", "{0:N1}", []interface{}{-0.5}, "-0.5"},
		{"grouped negative float", "{0:N1}", []interface{}{-1234.56}, "-1,234.6"},
		{"grouped infinity", "{0:N2}", []interface{}{math.Inf(-1)}, "-Inf"},
		{"fixed point keeps integer digits", "{0:F1}", []interface{}{int64(9007199254740993)}, "9007199254740993.0"},
		{"alignment just below limit", "{0,3:D}", []interface{}{7}, "  7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FormatWith(tt.format, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatWithErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []interface{}
	}{
		{"unclosed placeholder", "{0", []interface{}{1}},
		{"unbalanced closing brace", "a } b", nil},
		{"empty index", "{}", []interface{}{1}},
		{"non-numeric index", "{a}", []interface{}{1}},
		{"negative index", "{-1}", []interface{}{1}},
		{"index out of range", "{1}", []interface{}{1}},
		{"no arguments", "{0}", nil},
		{"nested placeholder", "{0{1}}", []interface{}{1, 2}},
		{"bad alignment", "{0,x}", []interface{}{1}},
		{"unknown numeric format", "{0:Z}", []interface{}{5}},
		{"decimal format on float", "{0:D2}", []interface{}{1.5}},
		{"bad precision", "{0:Fx}", []interface{}{1.5}},
		{"alignment at limit", "{0,1000000}", []interface{}{"x"}},
		{"negative alignment at limit", "{0,-1000000}", []interface{}{"x"}},
		{"huge alignment", "{0,9223372036854775807}", []interface{}{"x"}},
		{"min int alignment", "{0,-9223372036854775808}", []interface{}{"x"}},
		{"alignment overflow", "{0,99999999999999999999}", []interface{}{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FormatWith(tt.format, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsFormatError(err))
			assert.Empty(t, result)
		})
	}
}

func TestFormatWithErrorPosition(t *testing.T) {
	_, err := FormatWith("ab {5}", "x")
	require.Error(t, err)
	assert.Equal(t, 3, errors.ExtractDetails(err)["position"])
	assert.Equal(t, "ab {5}", errors.ExtractDetails(err)["input"])
}

func TestMustFormatWith(t *testing.T) {
	assert.Equal(t, "a-b", MustFormatWith("{0}-{1}", "a", "b"))
	assert.Panics(t, func() { MustFormatWith("{3}") })
}
