// File: stringx.go
// Title: Core String Utility Functions
// Description: Truncation, repetition, path separator conversion, newline
//              removal and extension handling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-10-15 v0.2.0: Limit, Repeat and path helpers for textkit

package stringx

import (
	"strings"
	"unicode/utf8"

	"github.com/msto63/textkit/foundation/core/errors"
)

// Limit shortens s to at most maxLength runes. A shortened result is
// trimmed of surrounding whitespace and followed by suffix; text that
// already fits is returned unchanged. A negative maxLength behaves like 0.
func Limit(s string, maxLength int, suffix string) string {
	if maxLength < 0 {
		maxLength = 0
	}
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	return strings.TrimSpace(s[:runeOffset(s, maxLength)]) + suffix
}

// Repeat returns s concatenated count times. count must not be negative.
func Repeat(s string, count int) (string, error) {
	if count < 0 {
		return "", errors.InvalidArgument("stringx", "repeat", count, "count >= 0")
	}
	return strings.Repeat(s, count), nil
}

// ToWindowsPath replaces every '/' with '\'.
func ToWindowsPath(s string) string {
	return strings.ReplaceAll(s, "/", `\`)
}

// ToMacPath replaces every '\' with '/'.
func ToMacPath(s string) string {
	return strings.ReplaceAll(s, `\`, "/")
}

// RemoveNewLine strips every '\n' and '\r'.
func RemoveNewLine(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}

// SafeAddExtension appends extension unless s already ends with it.
func SafeAddExtension(s, extension string) string {
	if strings.HasSuffix(s, extension) {
		return s
	}
	return s + extension
}

// runeOffset returns the byte offset of the n-th rune of s, or len(s).
func runeOffset(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}
