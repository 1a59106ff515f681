// File: format.go
// Title: Positional Formatting
// Description: Implements FormatWith, which substitutes {index[,alignment][:format]}
//              placeholders with the textual form of positional arguments.
// Author: msto63
// Version: v0.1.1
// Created: 2025-10-15
// Modified: 2025-10-16
//
// Change History:
// - 2025-10-15 v0.1.0: Initial implementation
// - 2025-10-16 v0.1.1: Exact digit grouping for N, bounded alignment,
//                      typed nil arguments render as ""

package stringx

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cast"

	"github.com/msto63/textkit/foundation/core/errors"
)

// maxAlignment bounds the absolute alignment width of a placeholder.
const maxAlignment = 1_000_000

// Formattable is implemented by values that render themselves for a
// placeholder carrying a format component, as in "{0:short}".
type Formattable interface {
	FormatText(format string) string
}

// FormatWith replaces each {n} placeholder in format with the n-th argument.
//
// A placeholder may carry an alignment and a format component:
// {n,width} right-aligns to width runes, {n,-width} left-aligns, and
// {n:spec} applies spec. "{{" and "}}" produce literal braces. Numeric
// arguments understand D, F, N and X specs with an optional precision
// (e.g. "{0:N2}"); time.Time uses spec as a Go layout.
//
// A placeholder without a matching argument, an unbalanced brace or a
// malformed placeholder yields an INVALID_FORMAT error.
func FormatWith(format string, args ...interface{}) (string, error) {
	var b strings.Builder
	b.Grow(len(format) + 8*len(args))

	for i := 0; i < len(format); {
		c := format[i]
		switch c {
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", errors.FormatError("stringx", "format_with", format, i, "unbalanced '}'")
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(format[i+1:], '}')
			if end < 0 {
				return "", errors.FormatError("stringx", "format_with", format, i, "unclosed placeholder")
			}
			body := format[i+1 : i+1+end]
			if err := writePlaceholder(&b, format, i, body, args); err != nil {
				return "", err
			}
			i += end + 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}

// MustFormatWith is like FormatWith but panics on error.
func MustFormatWith(format string, args ...interface{}) string {
	s, err := FormatWith(format, args...)
	if err != nil {
		panic(err)
	}
	return s
}

func writePlaceholder(b *strings.Builder, format string, pos int, body string, args []interface{}) error {
	fail := func(reason string) error {
		return errors.FormatError("stringx", "format_with", format, pos, reason)
	}

	if strings.ContainsRune(body, '{') {
		return fail("nested '{' in placeholder")
	}

	head, spec, _ := strings.Cut(body, ":")
	indexPart, alignPart, hasAlign := strings.Cut(head, ",")

	indexPart = strings.TrimSpace(indexPart)
	if indexPart == "" || strings.Trim(indexPart, "0123456789") != "" {
		return fail(fmt.Sprintf("invalid placeholder index %q", indexPart))
	}
	index, err := strconv.Atoi(indexPart)
	if err != nil {
		return fail(fmt.Sprintf("invalid placeholder index %q", indexPart))
	}
	if index >= len(args) {
		return fail(fmt.Sprintf("index %d out of range for %d argument(s)", index, len(args)))
	}

	width := 0
	if hasAlign {
		width, err = strconv.Atoi(strings.TrimSpace(alignPart))
		if err != nil {
			return fail(fmt.Sprintf("invalid alignment %q", alignPart))
		}
		if width <= -maxAlignment || width >= maxAlignment {
			return fail("alignment out of range")
		}
	}

	text, err := renderArg(args[index], spec)
	if err != nil {
		return fail(err.Error())
	}

	pad := abs(width) - utf8.RuneCountInString(text)
	if pad > 0 && width > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(text)
	if pad > 0 && width < 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return nil
}

func renderArg(arg interface{}, spec string) (string, error) {
	if isNil(arg) {
		return "", nil
	}
	if f, ok := arg.(Formattable); ok {
		return f.FormatText(spec), nil
	}
	if spec == "" {
		return toText(arg), nil
	}
	if t, ok := arg.(time.Time); ok {
		return t.Format(spec), nil
	}

	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return formatNumber(v, spec)
	default:
		// Non-numeric values ignore the format component.
		return toText(arg), nil
	}
}

func formatNumber(v reflect.Value, spec string) (string, error) {
	kind := spec[0]
	precision := -1
	if len(spec) > 1 {
		p, err := strconv.Atoi(spec[1:])
		if err != nil || p < 0 || p > 99 {
			return "", fmt.Errorf("invalid precision in format %q", spec)
		}
		precision = p
	}

	isFloat := v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64

	switch kind {
	case 'D', 'd':
		if isFloat {
			return "", fmt.Errorf("format %q requires an integer argument", spec)
		}
		digits, negative := integerDigits(v)
		if len(digits) < precision {
			digits = strings.Repeat("0", precision-len(digits)) + digits
		}
		if negative {
			return "-" + digits, nil
		}
		return digits, nil

	case 'F', 'f':
		if precision < 0 {
			precision = 2
		}
		if isFloat {
			return strconv.FormatFloat(v.Float(), 'f', precision, 64), nil
		}
		digits, negative := integerDigits(v)
		if negative {
			digits = "-" + digits
		}
		return digits + zeroFraction(precision), nil

	case 'N', 'n':
		if precision < 0 {
			precision = 2
		}
		return groupedNumber(v, precision), nil

	case 'X', 'x':
		if isFloat {
			return "", fmt.Errorf("format %q requires an integer argument", spec)
		}
		hex := strconv.FormatUint(integerBits(v), 16)
		if kind == 'X' {
			hex = strings.ToUpper(hex)
		}
		if len(hex) < precision {
			hex = strings.Repeat("0", precision-len(hex)) + hex
		}
		return hex, nil

	default:
		return "", fmt.Errorf("unknown numeric format %q", spec)
	}
}

// integerDigits returns the decimal magnitude and sign of an integer value.
func integerDigits(v reflect.Value) (string, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		if n < 0 {
			return strings.TrimPrefix(strconv.FormatInt(n, 10), "-"), true
		}
		return strconv.FormatInt(n, 10), false
	default:
		return strconv.FormatUint(v.Uint(), 10), false
	}
}

// integerBits returns the two's complement bits of an integer value,
// limited to the width of its type.
func integerBits(v reflect.Value) uint64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := v.Type().Bits()
		u := uint64(v.Int())
		if bits < 64 {
			u &= 1<<uint(bits) - 1
		}
		return u
	default:
		return v.Uint()
	}
}

// groupedNumber renders v with thousands separators and precision
// fraction digits. Integers keep all their digits.
func groupedNumber(v reflect.Value, precision int) string {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		s := strconv.FormatFloat(v.Float(), 'f', precision, 64)
		sign := ""
		if strings.HasPrefix(s, "-") {
			sign, s = "-", s[1:]
		}
		whole, fraction, hasFraction := strings.Cut(s, ".")
		n, ok := new(big.Int).SetString(whole, 10)
		if !ok {
			// NaN and infinities
			return sign + s
		}
		if hasFraction {
			return sign + humanize.BigComma(n) + "." + fraction
		}
		return sign + humanize.BigComma(n)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return humanize.Comma(v.Int()) + zeroFraction(precision)
	default:
		return humanize.BigComma(new(big.Int).SetUint64(v.Uint())) + zeroFraction(precision)
	}
}

func zeroFraction(precision int) string {
	if precision <= 0 {
		return ""
	}
	return "." + strings.Repeat("0", precision)
}

// isNil reports whether v is nil or a nil pointer, interface, map, slice,
// channel or func.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// toText converts any value to its textual representation.
func toText(v interface{}) string {
	if isNil(v) {
		return ""
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
