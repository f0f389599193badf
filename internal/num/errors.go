package num

import (
	"errors"
	"fmt"
)

// Error is the single error type raised by the dispatcher and the step
// sequencer. Code identifies the category; Message is surfaced verbatim.
//
// Categories:
//   - COERCE_SHAPE: a coercion returned something other than a pair
//   - COERCE_UNSUPPORTED: no coercion capability, or the capability failed
//   - COMPARISON: a relational operator on incomparable operands
//   - UNSUPPORTED_OPERATION: the operand kind has no such operation at all
//   - ARGUMENT / TYPE: step argument validation
//   - ZERO_DIVISION / FLOAT_DOMAIN: arithmetic domain errors
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is the human-readable description, returned by Error().
	Message string

	// Cause is the underlying failure, if any (e.g. a coercion that raised).
	Cause error
}

// ErrorCode categorizes errors.
type ErrorCode string

const (
	ErrCodeCoerceShape          ErrorCode = "COERCE_SHAPE"
	ErrCodeCoerceUnsupported    ErrorCode = "COERCE_UNSUPPORTED"
	ErrCodeComparison           ErrorCode = "COMPARISON"
	ErrCodeUnsupportedOperation ErrorCode = "UNSUPPORTED_OPERATION"
	ErrCodeArgument             ErrorCode = "ARGUMENT"
	ErrCodeType                 ErrorCode = "TYPE"
	ErrCodeZeroDivision         ErrorCode = "ZERO_DIVISION"
	ErrCodeFloatDomain          ErrorCode = "FLOAT_DOMAIN"
)

// CoerceShapeMessage is the fixed message of a malformed coercion result.
const CoerceShapeMessage = "coerce must return [x, y]"

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Errorf builds an *Error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func hasCode(err error, codes ...ErrorCode) bool {
	c := CodeOf(err)
	if c == "" {
		return false
	}
	for _, code := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// NewCoerceShapeError creates the error for a malformed coercion result.
func NewCoerceShapeError() *Error {
	return &Error{Code: ErrCodeCoerceShape, Message: CoerceShapeMessage}
}

// NewCoerceUnsupportedError creates the error raised when operand cannot be
// coerced into target's kind. inspected is operand's debug representation.
func NewCoerceUnsupportedError(inspected string, target Value, cause error) *Error {
	return &Error{
		Code:    ErrCodeCoerceUnsupported,
		Message: fmt.Sprintf("%s can't be coerced into %s", inspected, KindName(target)),
		Cause:   cause,
	}
}

// NewComparisonError creates the error for a failed relational comparison.
func NewComparisonError(left, right Value, cause error) *Error {
	return &Error{
		Code:    ErrCodeComparison,
		Message: fmt.Sprintf("comparison of %s with %s failed", KindName(left), KindName(right)),
		Cause:   cause,
	}
}

// NewUnsupportedOperationError creates the error for an operation that the
// receiver's kind does not define.
func NewUnsupportedOperationError(op string, receiver Value) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedOperation,
		Message: fmt.Sprintf("undefined method '%s' for %s", op, KindName(receiver)),
	}
}

// IsCoerceShapeError returns true if err is a malformed coercion error.
func IsCoerceShapeError(err error) bool {
	return hasCode(err, ErrCodeCoerceShape)
}

// IsCoerceUnsupportedError returns true if err is an unsupported coercion.
func IsCoerceUnsupportedError(err error) bool {
	return hasCode(err, ErrCodeCoerceUnsupported)
}

// IsComparisonError returns true if err is a failed relational comparison.
func IsComparisonError(err error) bool {
	return hasCode(err, ErrCodeComparison)
}

// IsUnsupportedOperationError returns true if the receiver lacks the operation.
func IsUnsupportedOperationError(err error) bool {
	return hasCode(err, ErrCodeUnsupportedOperation)
}

// IsArgumentError returns true if err is an argument validation error.
func IsArgumentError(err error) bool {
	return hasCode(err, ErrCodeArgument)
}

// IsTypeError returns true for the whole type-error family: TYPE and both
// coercion failures.
func IsTypeError(err error) bool {
	return hasCode(err, ErrCodeType, ErrCodeCoerceShape, ErrCodeCoerceUnsupported)
}

// IsZeroDivisionError returns true if err is an integer division by zero.
func IsZeroDivisionError(err error) bool {
	return hasCode(err, ErrCodeZeroDivision)
}

// IsFloatDomainError returns true if err is a NaN/Infinity conversion error.
func IsFloatDomainError(err error) bool {
	return hasCode(err, ErrCodeFloatDomain)
}
