// Package errors provides structured error types for the MinnieML runtime.
//
// Errors are categorized by Phase (which subsystem the error occurred in) and
// Kind (error category). The original C runtime swallowed most failures by
// returning the canonical empty value; this package is the error channel that
// replaces those silent drops.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseBuffer, errors.KindShortWrite).
//		Detail("flushed %d of %d bytes", n, pending).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseArray, idx, length)
//	err := errors.Overflow(errors.PhaseConvert, v, "int64 scratch")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
