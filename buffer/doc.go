// Package buffer implements the runtime's buffered output subsystem: an
// owned byte accumulator bound to a destination stream.
//
// # Overflow policy
//
// A Buffer carries one of two overflow policies, chosen at creation:
//
//	FlushOnOverflow - capacity is fixed; a write that would fill the buffer
//	                  flushes pending bytes first. A payload that cannot fit
//	                  even in an empty buffer goes directly to the
//	                  destination, bypassing the buffer.
//	GrowOnOverflow  - capacity doubles until the write fits; the buffer
//	                  never flushes on its own.
//
// # Delivery
//
// Release discards pending bytes without flushing; callers that need
// delivery must Flush first. Flush performs a single destination write of
// exactly the pending length. The default stdout buffer is created lazily by
// Stdout and torn down by ResetStdout; it is the runtime's only piece of
// process-wide mutable state and assumes the single-goroutine discipline of
// compiled MinnieML programs.
package buffer
