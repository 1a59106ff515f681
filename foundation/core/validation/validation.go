// File: validation.go
// Title: Core Validation Types
// Description: Validator interface, validation results and their conversion
//              into textkit errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2025-10-15 v0.2.0: ToError takes the error code; dropped context plumbing

package validation

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Validation failure codes
const (
	CodeRequired = "VALIDATION_REQUIRED"
	CodeFormat   = "VALIDATION_FORMAT"
	CodeCustom   = "VALIDATION_CUSTOM"
)

// Validator checks a value
type Validator interface {
	Validate(value interface{}) ValidationResult
}

// ValidatorFunc adapts a function to the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate calls f(value)
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation failure
type ValidationError struct {
	Code    string      `json:"code"`
	Field   string      `json:"field,omitempty"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewValidationErrorWithField creates a failed result for a single field
func NewValidationErrorWithField(code, field, message string, value interface{}) ValidationResult {
	r := NewValidationResult()
	r.AddFieldError(code, field, message, value)
	return r
}

// AddFieldError records a field-specific failure
func (r *ValidationResult) AddFieldError(code, field, message string, value interface{}) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
		Value:   value,
	})
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns all error messages
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// HasError reports whether the result contains the given failure code
func (r ValidationResult) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts the result to an error with the given code. It returns
// nil when validation passed.
func (r ValidationResult) ToError(code mdwerror.Code) error {
	if r.Valid {
		return nil
	}

	first := r.FirstError()
	if first == nil {
		return mdwerror.New("validation failed").WithCode(code)
	}

	err := mdwerror.New(first.Message).
		WithCode(code).
		WithDetail("validation_code", first.Code)
	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if first.Value != nil {
		err = err.WithDetail("value", first.Value)
	}
	if len(r.Errors) > 1 {
		err = err.WithDetail("total_errors", len(r.Errors)).
			WithDetail("all_messages", strings.Join(r.ErrorMessages(), "; "))
	}
	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}
	if first := r.FirstError(); first != nil {
		return fmt.Sprintf("ValidationResult{valid: false, errors: %d, first: %s}", len(r.Errors), first.Message)
	}
	return "ValidationResult{valid: false}"
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()
	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
	}
	return combined
}
