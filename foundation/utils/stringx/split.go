// File: split.go
// Title: Splitting and Chunking
// Description: Separator-based splitting with empty-entry policies,
//              per-character and per-grapheme splitting, and fixed-size
//              chunking.
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

	"github.com/rivo/uniseg"

	"github.com/msto63/textkit/foundation/core/errors"
)

// SplitOptions controls post-processing of split segments.
type SplitOptions int

const (
	// SplitNone keeps every segment, including empty ones.
	SplitNone SplitOptions = 0

	// SplitRemoveEmpty drops empty segments.
	SplitRemoveEmpty SplitOptions = 1 << 0

	// SplitTrimEntries trims whitespace around each segment. Combined with
	// SplitRemoveEmpty, segments that become empty are dropped as well.
	SplitTrimEntries SplitOptions = 1 << 1
)

// Split splits s around each occurrence of sep.
func Split(s, sep string, opts SplitOptions) []string {
	return SplitAny(s, opts, sep)
}

// SplitRune splits s around each occurrence of the rune sep.
func SplitRune(s string, sep rune, opts SplitOptions) []string {
	return SplitAny(s, opts, string(sep))
}

// SplitAny splits s around any of the separators. At each position the
// separators are tried in the given order and the first match is consumed.
// Empty separators are ignored; when none remain, every whitespace rune
// acts as a separator.
func SplitAny(s string, opts SplitOptions, separators ...string) []string {
	seps := make([]string, 0, len(separators))
	for _, sep := range separators {
		if sep != "" {
			seps = append(seps, sep)
		}
	}

	var parts []string
	if len(seps) == 0 {
		parts = splitOnWhitespace(s)
	} else {
		start := 0
		for i := 0; i < len(s); {
			matched := 0
			for _, sep := range seps {
				if strings.HasPrefix(s[i:], sep) {
					matched = len(sep)
					break
				}
			}
			if matched > 0 {
				parts = append(parts, s[start:i])
				i += matched
				start = i
				continue
			}
			_, size := utf8.DecodeRuneInString(s[i:])
			i += size
		}
		parts = append(parts, s[start:])
	}

	return applySplitOptions(parts, opts)
}

func splitOnWhitespace(s string) []string {
	var parts []string
	start := 0
	for i, r := range s {
		if unicode.IsSpace(r) {
			parts = append(parts, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(parts, s[start:])
}

func applySplitOptions(parts []string, opts SplitOptions) []string {
	if opts == SplitNone {
		return parts
	}
	out := parts[:0]
	for _, p := range parts {
		if opts&SplitTrimEntries != 0 {
			p = strings.TrimSpace(p)
		}
		if opts&SplitRemoveEmpty != 0 && p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SplitByOneCharacter returns each rune of s as its own string.
func SplitByOneCharacter(s string) []string {
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// SplitByGrapheme returns each user-perceived character of s, so that
// combining marks and emoji sequences stay together.
func SplitByGrapheme(s string) []string {
	out := make([]string, 0, uniseg.GraphemeClusterCount(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// SubstringAtCount cuts s into consecutive pieces of count runes; the last
// piece may be shorter. It returns ceil(runes/count) pieces and an
// INVALID_ARGUMENT error when count is not positive.
func SubstringAtCount(s string, count int) ([]string, error) {
	if count <= 0 {
		return nil, errors.InvalidArgument("stringx", "substring_at_count", count, "count > 0")
	}

	n := utf8.RuneCountInString(s)
	out := make([]string, 0, (n+count-1)/count)
	for len(s) > 0 {
		cut := runeOffset(s, count)
		out = append(out, s[:cut])
		s = s[cut:]
	}
	return out, nil
}
