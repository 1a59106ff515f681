// Package error provides the structured error type used across textkit.
//
// Package: error
// Title: textkit Error Model
// Description: Structured errors with a classification code, a severity and
//              a details map. Errors produced by the string utilities, the
//              configuration loader and the CLI all share this type so that
//              callers can branch on Code instead of on message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-10-15 v0.2.0: Reduced code table to the textkit error kinds
//
// Usage:
//
//	import mdwerror "github.com/msto63/textkit/foundation/core/error"
//
//	err := mdwerror.New("chunk size must be positive").
//		WithCode(mdwerror.CodeInvalidArgument).
//		WithOperation("stringx.SubstringAtCount").
//		WithDetail("count", 0)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
//		// reject the request
//	}
package error
