package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory represents different types of errors that can occur
// during an analysis run
type ErrorCategory string

const (
	// Errors that invalidate the whole run
	ErrorCategoryConfiguration ErrorCategory = "CONFIG"
	ErrorCategoryData          ErrorCategory = "DATA"

	// Errors local to a single strategy evaluation
	ErrorCategoryMissingData         ErrorCategory = "MISSING_DATA"
	ErrorCategoryInsufficientHistory ErrorCategory = "INSUFFICIENT_HISTORY"
	ErrorCategoryDegenerateVariance  ErrorCategory = "DEGENERATE_VARIANCE"
)

// Sentinel errors for errors.Is checks at call sites.
var (
	ErrMissingData         = errors.New("required price data is missing")
	ErrInsufficientHistory = errors.New("insufficient history for requested window")
	ErrDegenerateVariance  = errors.New("return series has zero variance")
)

// AnalysisError represents a categorized error with context
type AnalysisError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Message    string
	Underlying error
}

// Error implements the error interface
func (e *AnalysisError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s: %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Component, e.Operation, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AnalysisError) Unwrap() error {
	return e.Underlying
}

// IsFatal reports whether this error should abort the whole run rather
// than just the strategy that produced it.
func (e *AnalysisError) IsFatal() bool {
	return e.Category == ErrorCategoryConfiguration || e.Category == ErrorCategoryData
}

// NewAnalysisError creates a new categorized analysis error
func NewAnalysisError(category ErrorCategory, component, operation, message string) *AnalysisError {
	return &AnalysisError{
		Category:  category,
		Component: component,
		Operation: operation,
		Message:   message,
	}
}

// WrapError wraps an existing error with analysis error context
func WrapError(err error, category ErrorCategory, component, operation string) *AnalysisError {
	if err == nil {
		return nil
	}
	return &AnalysisError{
		Category:   category,
		Component:  component,
		Operation:  operation,
		Message:    "operation failed",
		Underlying: err,
	}
}

// Common error constructors

func NewMissingDataError(component, operation, message string) *AnalysisError {
	return &AnalysisError{
		Category:   ErrorCategoryMissingData,
		Component:  component,
		Operation:  operation,
		Message:    message,
		Underlying: ErrMissingData,
	}
}

func NewInsufficientHistoryError(component, operation, message string) *AnalysisError {
	return &AnalysisError{
		Category:   ErrorCategoryInsufficientHistory,
		Component:  component,
		Operation:  operation,
		Message:    message,
		Underlying: ErrInsufficientHistory,
	}
}

func NewDegenerateVarianceError(component, operation string) *AnalysisError {
	return &AnalysisError{
		Category:   ErrorCategoryDegenerateVariance,
		Component:  component,
		Operation:  operation,
		Message:    "cannot annualize a zero-variance series",
		Underlying: ErrDegenerateVariance,
	}
}

func NewConfigurationError(component, operation, message string) *AnalysisError {
	return NewAnalysisError(ErrorCategoryConfiguration, component, operation, message)
}

func NewDataError(component, operation string, err error) *AnalysisError {
	return WrapError(err, ErrorCategoryData, component, operation)
}
