// File: blank.go
// Title: Emptiness Predicates and Defaults
// Description: Null/empty/blank checks and the fallback helpers built on them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: IsEmpty/IsBlank in stringx.go
// - 2025-10-15 v0.2.0: Null-aware predicates and Default* helpers

package stringx

import "unicode"

// IsNullOrEmpty reports whether s has zero length.
func IsNullOrEmpty(s string) bool {
	return len(s) == 0
}

// IsNotNullOrEmpty is the negation of IsNullOrEmpty.
func IsNotNullOrEmpty(s string) bool {
	return len(s) > 0
}

// IsNullOrWhiteSpace reports whether s is empty or consists only of
// whitespace as defined by unicode.IsSpace.
func IsNullOrWhiteSpace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotNullOrWhiteSpace is the negation of IsNullOrWhiteSpace.
func IsNotNullOrWhiteSpace(s string) bool {
	return !IsNullOrWhiteSpace(s)
}

// IsNullOrEmptyPtr is IsNullOrEmpty for optional values; nil counts as empty.
func IsNullOrEmptyPtr(s *string) bool {
	return s == nil || IsNullOrEmpty(*s)
}

// IsNullOrWhiteSpacePtr is IsNullOrWhiteSpace for optional values; nil counts as blank.
func IsNullOrWhiteSpacePtr(s *string) bool {
	return s == nil || IsNullOrWhiteSpace(*s)
}

// DefaultIfEmpty returns fallback when s is empty, s otherwise.
func DefaultIfEmpty(s, fallback string) string {
	if IsNullOrEmpty(s) {
		return fallback
	}
	return s
}

// DefaultIfWhiteSpace returns fallback when s is empty or blank, s otherwise.
func DefaultIfWhiteSpace(s, fallback string) string {
	if IsNullOrWhiteSpace(s) {
		return fallback
	}
	return s
}

// GetIfNotNullOrWhiteSpace returns s when it has visible content and
// fallback otherwise.
func GetIfNotNullOrWhiteSpace(s, fallback string) string {
	if IsNotNullOrWhiteSpace(s) {
		return s
	}
	return fallback
}
