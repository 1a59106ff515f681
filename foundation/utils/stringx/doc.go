// Package stringx provides string convenience operations for textkit.
//
// Package: stringx
// Title: String Convenience Operations
// Description: Stateless helpers for positional formatting, joining,
//              blank checks and defaults, truncation, splitting and
//              chunking, snake/camel conversion, path separator conversion,
//              Shift_JIS round-tripping, regex-style escaping and
//              first/last occurrence replacement.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2025-10-15 v0.3.0: Reworked around the textkit operation set
//
// Overview
//
// Every function is pure: inputs are never modified, there is no package
// state, and all functions are safe for concurrent use. Lengths and
// positions visible to callers (Limit, SubstringAtCount, alignment in
// FormatWith) are counted in runes, not bytes.
//
// Go strings have no null value. The empty string plays the role of an
// absent value; the *Ptr predicates additionally accept a nil *string.
//
// Organization
//
//   - format.go:   FormatWith and the Formattable interface
//   - join.go:     ConcatWith and its newline/comma variants
//   - blank.go:    IsNullOrEmpty / IsNullOrWhiteSpace and the Default* helpers
//   - stringx.go:  Limit, Repeat, path conversion, SafeAddExtension
//   - split.go:    Split variants, SplitByOneCharacter, SubstringAtCount
//   - case.go:     snake to camel conversion, IsLower / IsUpper
//   - compare.go:  Comparison modes, Equals, Index, ContainsAny, StartsWithAny
//   - replace.go:  ReplaceEmpty, ReplaceFirst, ReplaceIf, RemoveAtLast
//   - encoding.go: ToShiftJIS and EncodingMode
//   - escape.go:   Escape / Unescape
//
// Usage Examples
//
//	s, err := stringx.FormatWith("{0} has {1,3} items", "cart", 7)
//	// "cart has   7 items"
//
//	stringx.SnakeToUpperCamel("quoted_printable_encode") // "QuotedPrintableEncode"
//	stringx.Limit("Hello, world", 6, "...")               // "Hello,..."
//
//	chunks, err := stringx.SubstringAtCount("abcdefg", 3)
//	// []string{"abc", "def", "g"}
//
// Error Handling
//
// Functions that can fail return *mdwerror.Error values built through the
// foundation/core/errors constructors:
//
//   - INVALID_ARGUMENT: negative repeat count, non-positive chunk size
//   - INVALID_FORMAT:   malformed format template or escape sequence
//   - NOT_FOUND:        RemoveAtLast on a value that is not present
//
// Predicates never fail.
//
// Encoding Conversion
//
// ToShiftJIS only converts when called with EncodingEditor. With
// EncodingPassthrough it returns its input. The mode is always an explicit
// argument; the CLI derives it from the encoding.editor_mode setting.
package stringx
