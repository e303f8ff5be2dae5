// Package sysio provides the runtime's thin system interface: stream I/O by
// integer descriptor, line reads, synchronous external process invocation,
// and the fatal "not implemented" diagnostic the compiler emits for holes.
//
// # Descriptors
//
// Streams are addressed by small integers. Descriptors 0, 1 and 2 are
// preopened to the process's standard input, output and error streams;
// OpenRead, OpenWrite and OpenAppend allocate new ones. The buffer package
// writes to these streams without inspecting their internals.
//
// Read returns 0 bytes at end of stream rather than an error, matching the
// underlying OS read convention the compiled programs were written against.
package sysio
