package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// StackTracer is implemented by errors that carry a pkg/errors stack trace.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// ErrorTracer is an error with a classification code, a message and an
// underlying cause that always carries a stack trace.
type ErrorTracer struct {
	Code    ErrorCode
	Message string
	Err     error
}

// NewTracer creates an ErrorTracer with the given code and message. The
// stack is captured at the call site.
func NewTracer(code ErrorCode, message string) *ErrorTracer {
	return &ErrorTracer{
		Code:    code,
		Message: message,
		Err:     errors.New(message),
	}
}

// Tracef creates an ErrorTracer with a formatted message.
func Tracef(code ErrorCode, format string, args ...any) *ErrorTracer {
	return NewTracer(code, fmt.Sprintf(format, args...))
}

// TracerFromError wraps an existing error, preserving its stack trace when
// present and capturing one when not. An error that already is an
// ErrorTracer is returned unchanged so codes survive layer crossings.
func TracerFromError(err error) *ErrorTracer {
	var tracer *ErrorTracer
	if stderrors.As(err, &tracer) {
		return tracer
	}

	wrapped := err
	if _, ok := err.(StackTracer); !ok {
		wrapped = errors.WithStack(err)
	}
	return &ErrorTracer{
		Code:    Internal,
		Message: err.Error(),
		Err:     wrapped,
	}
}

// WithCode wraps err in an ErrorTracer classified with code.
func WithCode(code ErrorCode, err error) *ErrorTracer {
	tracer := TracerFromError(err)
	tracer.Code = code
	return tracer
}

func (e *ErrorTracer) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// Wrap attaches an underlying error, adding a stack trace if it has none.
func (e *ErrorTracer) Wrap(err error) *ErrorTracer {
	e.Err = err
	if _, ok := err.(StackTracer); !ok {
		e.Err = errors.WithStack(err)
	}
	return e
}

// StackTrace exposes the stack of the underlying error, if any.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	var st StackTracer
	if ok := stderrors.As(e.Err, &st); ok {
		return st.StackTrace()
	}
	return nil
}

// GetCode extracts the ErrorCode from err, walking the unwrap chain.
// Unclassified errors report Internal; a nil error reports an empty code.
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var tracer *ErrorTracer
	if stderrors.As(err, &tracer) {
		return tracer.Code
	}
	return Internal
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
