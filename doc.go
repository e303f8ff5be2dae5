// Package minnieml provides the native runtime support library for programs
// compiled by the MinnieML compiler.
//
// MinnieML uses static, compiler-verified ownership tracking instead of
// garbage collection or reference counting. The compiler proves at each
// program point whether a value is owned (this call site is the last use) or
// borrowed, and emits explicit Release and Duplicate calls only where
// ownership analysis requires them. This library implements the value types
// and I/O machinery those calls operate on; it performs no ownership checks
// of its own and never reclaims memory on its own initiative.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	minnieml/        Root package with the Owned interface
//	├── value/       Owned byte strings, conversions, string builder, fixed arrays
//	├── buffer/      Buffered output bound to a destination stream
//	├── ownership/   Lifecycle ledger for release/duplicate accounting
//	├── errors/      Structured error types for debugging
//	├── sysio/       Descriptor-based stream I/O and process spawning
//	└── cmd/run/     Demo runner exercising the runtime end to end
//
// # Quick Start
//
// Build a string, write it through a buffer, and release what you own:
//
//	b := value.NewBuilder(16)
//	b.AppendString("Hello, ")
//	b.AppendString("World")
//	s := b.Finalize()
//
//	out := buffer.New()
//	out.WriteLine(s)
//	out.Flush()
//
//	s.Release()
//	out.Release()
//
// # Ownership Model
//
// Every owned value has exactly one live handle responsible for releasing it.
// Duplicate produces a second, independently owned deep copy; the two share
// no storage. Release must be called exactly once per owned value - the
// compiler schedules those calls, and this runtime trusts that schedule.
// The ownership package can optionally record every create, release and
// duplicate so tests can verify the contract.
//
// # Thread Safety
//
// Compiled MinnieML programs are single-threaded and so is this runtime's
// contract: no owned value, builder, buffer or array may be touched from more
// than one goroutine. The only process-wide mutable state is the lazily
// created default stdout buffer in the buffer package, which exists solely to
// batch writes without threading a buffer handle through every call site.
package minnieml
