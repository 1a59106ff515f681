// File: join.go
// Title: Sequence Joining
// Description: Joins slices of arbitrary element type into one string.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-15
// Modified: 2025-10-15
//
// Change History:
// - 2025-10-15 v0.1.0: Initial implementation

package stringx

import "strings"

// ConcatWith joins items in order with separator placed strictly between
// adjacent elements. Elements are converted with the same rules as
// FormatWith arguments; nil elements become "". An empty slice yields "".
func ConcatWith[T any](items []T, separator string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return toText(items[0])
	}

	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(toText(item))
	}
	return b.String()
}

// ConcatWithNewLine joins items with "\n".
func ConcatWithNewLine[T any](items []T) string {
	return ConcatWith(items, "\n")
}

// ConcatWithComma joins items with ",".
func ConcatWithComma[T any](items []T) string {
	return ConcatWith(items, ",")
}
