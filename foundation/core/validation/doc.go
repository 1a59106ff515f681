// Package validation provides composable validators with structured results.
//
// Package: validation
// Title: Validation Framework for textkit
// Description: Validators, validator chains and results that collect
//              field-level failures and convert them into textkit errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework
// - 2025-10-15 v0.2.0: Reduced to chains and results, caller-chosen error code
//
// Usage:
//
//	chain := validation.NewValidatorChain("settings").
//		AddFunc(func(v interface{}) validation.ValidationResult {
//			s := v.(*Settings)
//			if s.Name == "" {
//				return validation.NewValidationErrorWithField(validation.CodeRequired, "name", "name is required", s.Name)
//			}
//			return validation.NewValidationResult()
//		})
//
//	if err := chain.Validate(settings).ToError(mdwerror.CodeInvalidConfig); err != nil {
//		return err
//	}
//
// A chain collects every failure unless StopOnFirstError is set. ToError
// reports the first failure as the error message and lists all messages in
// the error details.
package validation
