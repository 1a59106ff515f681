// File: case.go
// Title: String Case Conversion Utilities
// Description: snake_case to camel case conversion and case predicates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2025-10-15 v0.2.0: Snake to camel conversion, IsLower/IsUpper

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SnakeToUpperCamel converts snake_case to UpperCamelCase.
// Example: "quoted_printable_encode" -> "QuotedPrintableEncode"
//
// Empty tokens from leading, trailing or repeated underscores are dropped.
// Only the first rune of each token changes; the rest is kept as is.
func SnakeToUpperCamel(s string) string {
	if s == "" {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, token := range strings.Split(s, "_") {
		if token == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(token)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(token[size:])
	}
	return b.String()
}

// SnakeToLowerCamel converts snake_case to lowerCamelCase.
// Example: "quoted_printable_encode" -> "quotedPrintableEncode"
func SnakeToLowerCamel(s string) string {
	upper := SnakeToUpperCamel(s)
	if upper == "" {
		return upper
	}
	r, size := utf8.DecodeRuneInString(upper)
	return string(unicode.ToLower(r)) + upper[size:]
}

// IsLower reports whether s contains no upper-case rune. Caseless runes
// such as digits are ignored, so "" and "123" are lower.
func IsLower(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// IsUpper reports whether s contains no lower-case rune.
func IsUpper(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
	}
	return true
}
