// File: replace.go
// Title: Removal and Replacement Helpers
// Description: Occurrence-targeted replacement and removal.
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

	"github.com/msto63/textkit/foundation/core/errors"
)

// ReplaceEmpty removes every occurrence of old. An empty old is a no-op.
// Example: ReplaceEmpty("ABCABC", "B") -> "ACAC"
func ReplaceEmpty(s, old string) string {
	if old == "" {
		return s
	}
	return strings.ReplaceAll(s, old, "")
}

// RemoveAtLast removes the last occurrence of value. When value does not
// occur in s a NOT_FOUND error is returned.
func RemoveAtLast(s, value string) (string, error) {
	i := strings.LastIndex(s, value)
	if i < 0 {
		return s, errors.NotFound("stringx", "remove_at_last", value)
	}
	return s[:i] + s[i+len(value):], nil
}

// ReplaceFirst replaces the first occurrence of old with replacement.
// s is returned unchanged when old does not occur. An empty old matches at
// the start, so replacement is prepended.
func ReplaceFirst(s, old, replacement string) string {
	return ReplaceFirstMode(s, old, replacement, Ordinal)
}

// ReplaceFirstMode is ReplaceFirst with matching under cmp.
func ReplaceFirstMode(s, old, replacement string, cmp Comparison) string {
	start, end := Index(s, old, cmp)
	if start < 0 {
		return s
	}
	return s[:start] + replacement + s[end:]
}

// ReplaceIf replaces every occurrence of old when condition is true and
// returns s unchanged otherwise.
func ReplaceIf(s string, condition bool, old, replacement string) string {
	return ReplaceIfMode(s, condition, old, replacement, Ordinal)
}

// ReplaceIfMode is ReplaceIf with matching under cmp.
func ReplaceIfMode(s string, condition bool, old, replacement string, cmp Comparison) string {
	if !condition || old == "" {
		return s
	}
	if cmp == Ordinal {
		return strings.ReplaceAll(s, old, replacement)
	}

	var b strings.Builder
	for {
		start, end := Index(s, old, cmp)
		if start < 0 || end == start {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		b.WriteString(replacement)
		s = s[end:]
	}
}
