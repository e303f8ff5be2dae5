package value

import (
	"github.com/fedesilva/minnieml/ownership"
)

// Builder accumulates bytes and produces an owned Str on Finalize. The
// backing buffer grows by doubling. A Builder is single-use: Finalize
// consumes it.
type Builder struct {
	buf  []byte // len(buf) is the capacity
	n    int
	h    ownership.Handle
	done bool
}

// NewBuilder creates an empty builder. capacity is clamped to at least 1 so
// the buffer can always hold a terminator on finalize.
func NewBuilder(capacity int64) *Builder {
	if capacity < 1 {
		capacity = 1
	}
	return &Builder{
		buf: make([]byte, capacity),
		h:   ownership.OnCreate(ownership.KindBuilder),
	}
}

// Append copies s's bytes onto the end of the builder. Appending the empty
// value, or appending to a finalized builder, is a no-op. The caller keeps
// ownership of s.
func (b *Builder) Append(s Str) {
	if b.done || s.data == nil {
		return
	}
	b.grow(len(s.data))
	copy(b.buf[b.n:], s.data)
	b.n += len(s.data)
}

// AppendString copies a Go string onto the end of the builder.
func (b *Builder) AppendString(s string) {
	if b.done || len(s) == 0 {
		return
	}
	b.grow(len(s))
	copy(b.buf[b.n:], s)
	b.n += len(s)
}

// AppendByte appends a single byte.
func (b *Builder) AppendByte(c byte) {
	if b.done {
		return
	}
	b.grow(1)
	b.buf[b.n] = c
	b.n++
}

// grow doubles the capacity until n more bytes fit strictly below it.
func (b *Builder) grow(n int) {
	need := b.n + n
	if need < len(b.buf) {
		return
	}
	newCap := len(b.buf)
	for need >= newCap {
		newCap *= 2
	}
	buf := make([]byte, newCap)
	copy(buf, b.buf[:b.n])
	b.buf = buf
}

// Len returns the number of accumulated bytes.
func (b *Builder) Len() int64 {
	return int64(b.n)
}

// Cap returns the current capacity of the backing buffer.
func (b *Builder) Cap() int64 {
	return int64(len(b.buf))
}

// Finalize copies the accumulated bytes into a Str sized exactly to the
// content and consumes the builder. A second Finalize on the same builder
// returns the canonical empty value.
func (b *Builder) Finalize() Str {
	if b.done {
		return Str{}
	}
	b.done = true

	var out Str
	if b.n > 0 {
		data := make([]byte, b.n)
		copy(data, b.buf[:b.n])
		out = newStr(data)
	}

	b.buf = nil
	b.n = 0
	ownership.OnRelease(b.h)
	b.h = 0
	return out
}

// Release discards the builder and its accumulated bytes without producing
// a Str. Releasing a finalized builder is a no-op.
func (b *Builder) Release() {
	if b.done {
		return
	}
	b.done = true
	b.buf = nil
	b.n = 0
	ownership.OnRelease(b.h)
	b.h = 0
}
