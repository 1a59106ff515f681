// File: compare.go
// Title: Comparison Modes and Containment Checks
// Description: Ordinal, case-insensitive and canonical-equivalence matching
//              used by the prefix and replacement helpers.
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
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/msto63/textkit/foundation/core/errors"
)

// Comparison selects how text is matched.
type Comparison int

const (
	// Ordinal compares bytes exactly.
	Ordinal Comparison = iota

	// OrdinalIgnoreCase compares runes under simple Unicode case folding.
	OrdinalIgnoreCase

	// Culture treats canonically equivalent text as equal, e.g. "é" written
	// as one rune or as "e" plus a combining accent.
	Culture

	// CultureIgnoreCase combines Culture with full case folding, so "STRASSE"
	// matches "straße".
	CultureIgnoreCase
)

var comparisonNames = map[Comparison]string{
	Ordinal:           "ordinal",
	OrdinalIgnoreCase: "ordinal-ignore-case",
	Culture:           "culture",
	CultureIgnoreCase: "culture-ignore-case",
}

// String returns the name accepted by ParseComparison.
func (c Comparison) String() string {
	if name, ok := comparisonNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseComparison parses a comparison name such as "ordinal-ignore-case".
func ParseComparison(name string) (Comparison, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for c, n := range comparisonNames {
		if n == normalized {
			return c, nil
		}
	}
	return Ordinal, errors.InvalidArgument("stringx", "parse_comparison", name,
		"one of ordinal, ordinal-ignore-case, culture, culture-ignore-case")
}

// ContainsAny reports whether s contains at least one of the candidates.
func ContainsAny(s string, candidates ...string) bool {
	for _, c := range candidates {
		if strings.Contains(s, c) {
			return true
		}
	}
	return false
}

// StartsWithAny reports whether s starts with any of values (ordinal).
func StartsWithAny(s string, values []string) bool {
	return StartsWithAnyMode(s, values, Ordinal)
}

// StartsWithAnyMode reports whether s starts with any of values under cmp.
func StartsWithAnyMode(s string, values []string, cmp Comparison) bool {
	for _, v := range values {
		if _, ok := cmp.matchAt(s, 0, v); ok {
			return true
		}
	}
	return false
}

// Equals reports whether a and b are equal under cmp.
func Equals(a, b string, cmp Comparison) bool {
	end, ok := cmp.matchAt(a, 0, b)
	return ok && end == len(a)
}

// Index returns the byte range [start, end) of the first match of sub in s
// under cmp, or -1, -1. The range refers to s and may differ in length from
// sub when case folding or normalization is involved.
func Index(s, sub string, cmp Comparison) (start, end int) {
	if cmp == Ordinal {
		i := strings.Index(s, sub)
		if i < 0 {
			return -1, -1
		}
		return i, i + len(sub)
	}

	for i := 0; ; {
		if e, ok := cmp.matchAt(s, i, sub); ok {
			return i, e
		}
		if i >= len(s) {
			return -1, -1
		}
		i += cmp.step(s[i:])
	}
}

// step returns the distance to the next candidate match position.
func (c Comparison) step(rest string) int {
	var n int
	if c == Culture || c == CultureIgnoreCase {
		n = norm.NFC.NextBoundaryInString(rest, true)
	} else {
		_, n = utf8.DecodeRuneInString(rest)
	}
	if n <= 0 {
		n = len(rest)
	}
	return n
}

// matchAt reports whether sub matches s starting at byte offset i and
// returns the end offset of the match in s.
func (c Comparison) matchAt(s string, i int, sub string) (int, bool) {
	switch c {
	case OrdinalIgnoreCase:
		j := i
		for _, want := range sub {
			if j >= len(s) {
				return 0, false
			}
			got, size := utf8.DecodeRuneInString(s[j:])
			if !equalFoldRune(got, want) {
				return 0, false
			}
			j += size
		}
		return j, true

	case Culture, CultureIgnoreCase:
		target := c.canonical(sub)
		if target == "" {
			return i, true
		}
		for j := i; j < len(s); {
			j += c.step(s[j:])
			segment := c.canonical(s[i:j])
			if segment == target {
				return j, true
			}
			if !strings.HasPrefix(target, segment) {
				return 0, false
			}
		}
		return 0, false

	default:
		if strings.HasPrefix(s[i:], sub) {
			return i + len(sub), true
		}
		return 0, false
	}
}

// canonical maps text to the form compared under Culture modes.
func (c Comparison) canonical(s string) string {
	if c == CultureIgnoreCase {
		s = cases.Fold().String(s)
	}
	return norm.NFC.String(s)
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
