// File: escape.go
// Title: Regular Expression Escaping
// Description: Escapes regex metacharacters and resolves escape sequences
//              following the .NET regular expression conventions.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-15
// Modified: 2025-10-15
//
// Change History:
// - 2025-10-15 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/msto63/textkit/foundation/core/errors"
)

// Escape escapes the minimal set of metacharacters (\, *, +, ?, |, {, [,
// (, ), ^, $, ., #, space) with a backslash and replaces tab, newline,
// carriage return and form feed by their escape codes.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\', '*', '+', '?', '|', '{', '[', '(', ')', '^', '$', '.', '#', ' ':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Unescape resolves escape sequences in s. Supported forms are octal
// (\0 to \377), \xHH, \uHHHH, \cX control characters and the single
// letter escapes \a \b \e \f \n \r \t \v. Any other escaped non-word
// character stands for itself.
func Unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			r, size := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += size
			continue
		}

		start := i
		i++
		if i >= len(s) {
			return "", unescapeError(s, start, `illegal \\ at end of pattern`)
		}

		r, next, err := scanEscape(s, start, i)
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
		i = next
	}
	return b.String(), nil
}

// scanEscape decodes the escape whose body starts at s[i] and returns the
// rune and the offset after the sequence.
func scanEscape(s string, start, i int) (rune, int, error) {
	ch, size := utf8.DecodeRuneInString(s[i:])
	i += size

	switch {
	case ch >= '0' && ch <= '7':
		v := ch - '0'
		for n := 1; n < 3 && i < len(s) && s[i] >= '0' && s[i] <= '7'; n++ {
			v = v*8 + rune(s[i]-'0')
			i++
		}
		return v & 0xFF, i, nil

	case ch == 'x':
		v, next, err := scanHex(s, start, i, 2)
		return v, next, err

	case ch == 'u':
		v, next, err := scanHex(s, start, i, 4)
		if err != nil {
			return 0, 0, err
		}
		if utf16.IsSurrogate(v) && strings.HasPrefix(s[next:], `\u`) {
			if low, after, lowErr := scanHex(s, next, next+2, 4); lowErr == nil {
				if combined := utf16.DecodeRune(v, low); combined != unicode.ReplacementChar {
					return combined, after, nil
				}
			}
		}
		return v, next, nil

	case ch == 'c':
		if i >= len(s) {
			return 0, 0, unescapeError(s, start, "missing control character")
		}
		c := rune(s[i])
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		c -= '@'
		if c < 0 || c >= ' ' {
			return 0, 0, unescapeError(s, start, "unrecognized control character")
		}
		return c, i + 1, nil

	case ch == 'a':
		return '\a', i, nil
	case ch == 'b':
		return '\b', i, nil
	case ch == 'e':
		return 0x1B, i, nil
	case ch == 'f':
		return '\f', i, nil
	case ch == 'n':
		return '\n', i, nil
	case ch == 'r':
		return '\r', i, nil
	case ch == 't':
		return '\t', i, nil
	case ch == 'v':
		return '\v', i, nil

	case ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch):
		return 0, 0, unescapeError(s, start, "unrecognized escape sequence \\"+string(ch))
	}
	return ch, i, nil
}

// scanHex reads exactly digits hex digits at s[i:].
func scanHex(s string, start, i, digits int) (rune, int, error) {
	if len(s)-i < digits {
		return 0, 0, unescapeError(s, start, "insufficient hexadecimal digits")
	}
	var v rune
	for n := 0; n < digits; n++ {
		d := hexValue(s[i+n])
		if d < 0 {
			return 0, 0, unescapeError(s, start, "insufficient hexadecimal digits")
		}
		v = v*16 + d
	}
	return v, i + digits, nil
}

func hexValue(c byte) rune {
	switch {
	case c >= '0' && c <= '9':
		return rune(c - '0')
	case c >= 'a' && c <= 'f':
		return rune(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return rune(c-'A') + 10
	}
	return -1
}

func unescapeError(s string, pos int, reason string) error {
	return errors.FormatError("stringx", "unescape", s, pos, reason)
}
