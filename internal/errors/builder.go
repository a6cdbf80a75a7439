package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// InternalError is the error type produced by the builder. It carries a
// user-facing hint and structured details alongside the underlying cause,
// and is marked with one of the package-level marker errors so callers
// can classify it with errors.Is.
type InternalError struct {
	cause   error
	mark    error
	hint    string
	details map[string]interface{}
}

func (e *InternalError) Error() string {
	return e.cause.Error()
}

func (e *InternalError) Unwrap() error {
	return e.cause
}

// Is lets errors.Is match both the mark and the cause chain.
func (e *InternalError) Is(target error) bool {
	if e.mark != nil && errors.Is(e.mark, target) {
		return true
	}
	return errors.Is(e.cause, target)
}

// Hint returns the user-facing hint, if any.
func (e *InternalError) Hint() string {
	return e.hint
}

// ReportableDetails returns structured details safe to expose to callers.
func (e *InternalError) ReportableDetails() map[string]interface{} {
	return e.details
}

// ErrorBuilder accumulates context for an error before it is marked.
type ErrorBuilder struct {
	err     error
	hint    string
	details map[string]interface{}
}

// NewError starts a builder from a new error message.
func NewError(message string) *ErrorBuilder {
	return &ErrorBuilder{err: errors.New(message)}
}

// NewErrorf starts a builder from a formatted error message.
func NewErrorf(format string, args ...interface{}) *ErrorBuilder {
	return &ErrorBuilder{err: errors.Newf(format, args...)}
}

// WithError starts a builder that wraps an existing error.
func WithError(err error) *ErrorBuilder {
	if err == nil {
		err = errors.New("unknown error")
	}
	return &ErrorBuilder{err: err}
}

// WithHint attaches a user-facing hint to the error.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.hint = hint
	return b
}

// WithHintf attaches a formatted user-facing hint to the error.
func (b *ErrorBuilder) WithHintf(format string, args ...interface{}) *ErrorBuilder {
	b.hint = fmt.Sprintf(format, args...)
	return b
}

// WithMessage wraps the underlying error with an additional message.
func (b *ErrorBuilder) WithMessage(message string) *ErrorBuilder {
	b.err = errors.Wrap(b.err, message)
	return b
}

// WithReportableDetails attaches structured details that are safe to
// surface in API responses.
func (b *ErrorBuilder) WithReportableDetails(details map[string]interface{}) *ErrorBuilder {
	b.details = details
	return b
}

// Mark finalizes the builder, classifying the error with the given marker.
func (b *ErrorBuilder) Mark(mark error) error {
	return &InternalError{
		cause:   b.err,
		mark:    mark,
		hint:    b.hint,
		details: b.details,
	}
}
