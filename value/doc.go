// Package value implements the owned value types of the MinnieML runtime:
// the owned byte string Str, the growable Builder that produces one, and the
// fixed-length IntArray and StrArray containers.
//
// # Ownership
//
// Every constructor in this package returns freshly owned storage; nothing
// ever aliases an existing value's backing bytes. Release reclaims a value's
// storage and must be called exactly once per owned value - the compiler
// schedules those calls. Duplicate returns a deep copy with its own storage.
//
// The zero Str is the canonical empty value: no backing storage, length
// zero. Releasing it is a no-op.
//
// # Checked and unchecked array access
//
// Arrays expose two access paths on purpose. Get and Set validate the index
// and terminate the process with a diagnostic on violation, because an
// out-of-bounds access means the compiler's bounds proofs were bypassed.
// UncheckedGet and UncheckedSet skip validation entirely; they exist for code
// paths the compiler has already proven in-bounds, and violating the bound
// there is undefined behavior.
package value
