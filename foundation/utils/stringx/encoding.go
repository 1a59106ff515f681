// File: encoding.go
// Title: Shift-JIS Round Trip
// Description: Projects text onto the Shift-JIS repertoire for editors that
//              only store legacy Japanese encodings.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-15
// Modified: 2025-10-15
//
// Change History:
// - 2025-10-15 v0.1.0: Initial implementation

package stringx

import (
	"bytes"

	"golang.org/x/text/encoding/japanese"
)

// EncodingMode selects whether ToShiftJIS converts its input.
type EncodingMode int

const (
	// EncodingPassthrough returns text unchanged.
	EncodingPassthrough EncodingMode = iota

	// EncodingEditor round-trips text through Shift-JIS.
	EncodingEditor
)

// String returns the mode name.
func (m EncodingMode) String() string {
	switch m {
	case EncodingPassthrough:
		return "passthrough"
	case EncodingEditor:
		return "editor"
	default:
		return "unknown"
	}
}

// EncodingModeFromFlag maps an editor-mode switch to an EncodingMode.
func EncodingModeFromFlag(editor bool) EncodingMode {
	if editor {
		return EncodingEditor
	}
	return EncodingPassthrough
}

// EncodeShiftJIS encodes s as Shift-JIS. Runes without a Shift-JIS mapping
// are written as '?'.
func EncodeShiftJIS(s string) []byte {
	enc := japanese.ShiftJIS.NewEncoder()
	var buf bytes.Buffer
	buf.Grow(len(s))
	for _, r := range s {
		b, err := enc.Bytes([]byte(string(r)))
		if err != nil {
			buf.WriteByte('?')
			enc.Reset()
			continue
		}
		buf.Write(b)
	}
	return buf.Bytes()
}

// ToShiftJIS returns s unchanged in passthrough mode. In editor mode s is
// encoded to Shift-JIS and decoded back, so unmappable characters come
// back as '?'.
func ToShiftJIS(s string, mode EncodingMode) string {
	if mode != EncodingEditor {
		return s
	}
	decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(EncodeShiftJIS(s))
	if err != nil {
		return s
	}
	return string(decoded)
}
