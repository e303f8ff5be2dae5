package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which runtime subsystem the error occurred in
type Phase string

const (
	PhaseConvert Phase = "convert" // text/integer conversions
	PhaseBuild   Phase = "build"   // string builder
	PhaseBuffer  Phase = "buffer"  // buffered output
	PhaseIO      Phase = "io"      // descriptor stream I/O
	PhaseExec    Phase = "exec"    // external process invocation
	PhaseArray   Phase = "array"   // fixed array access
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBounds  Kind = "out_of_bounds"
	KindOverflow     Kind = "overflow"
	KindInvalidDigit Kind = "invalid_digit"
	KindShortWrite   Kind = "short_write"
	KindWriteFailed  Kind = "write_failed"
	KindOpenFailed   Kind = "open_failed"
	KindReadFailed   Kind = "read_failed"
	KindNotFound     Kind = "not_found"
	KindSpawnFailed  Kind = "spawn_failed"
	KindInvalidInput Kind = "invalid_input"
	KindClosed       Kind = "closed"
	KindFinalized    Kind = "finalized"
)

// Error is the structured error type used throughout the runtime
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, index, length int64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, value any, target string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("value %v overflows %s", value, target),
		Value:  value,
	}
}

// InvalidDigit creates an invalid digit error for strict integer parsing
func InvalidDigit(offset int, c byte) *Error {
	return &Error{
		Phase:  PhaseConvert,
		Kind:   KindInvalidDigit,
		Detail: fmt.Sprintf("byte %q at offset %d is not a decimal digit", c, offset),
		Value:  c,
	}
}

// ShortWrite creates a short write error for partial flushes
func ShortWrite(phase Phase, wrote, pending int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindShortWrite,
		Detail: fmt.Sprintf("wrote %d of %d pending bytes", wrote, pending),
	}
}

// WriteFailed creates an error for a failed destination write
func WriteFailed(phase Phase, cause error, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindWriteFailed,
		Detail: what,
		Cause:  cause,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what string, id any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %v not found", what, id),
		Value:  id,
	}
}

// SpawnFailed creates a process spawn error
func SpawnFailed(cmd string, cause error) *Error {
	return &Error{
		Phase:  PhaseExec,
		Kind:   KindSpawnFailed,
		Detail: fmt.Sprintf("spawn %q", cmd),
		Cause:  cause,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Closed creates an error for operations on a released or closed resource
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}

// Finalized creates an error for reuse of a consumed builder
func Finalized(what string) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindFinalized,
		Detail: fmt.Sprintf("%s already finalized", what),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
