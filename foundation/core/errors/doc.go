// Package errors is the standard way for textkit packages to create errors.
//
// Package: errors
// Title: Standard Error Constructors for textkit
// Description: Fluent ErrorBuilder plus constructors for the error kinds the
//              string utilities surface: invalid arguments, malformed
//              templates or escape sequences, and missing values. All
//              constructors return *mdwerror.Error tagged with the module
//              and operation that failed.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2025-10-15 v0.2.0: Reduced to the textkit error kinds
//
// Usage:
//
//	if count <= 0 {
//		return nil, errors.InvalidArgument("stringx", "substring_at_count", count, "count > 0")
//	}
//
//	if errors.IsNotFound(err) {
//		// value was not present
//	}
package errors
