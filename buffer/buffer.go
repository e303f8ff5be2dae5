package buffer

import (
	"io"
	"os"

	"go.uber.org/zap"

	rterrors "github.com/fedesilva/minnieml/errors"
	"github.com/fedesilva/minnieml/ownership"
	"github.com/fedesilva/minnieml/value"
)

// Policy selects what a Buffer does when a write would overflow it.
type Policy uint8

const (
	// FlushOnOverflow keeps capacity fixed and flushes pending bytes before
	// a write that would not fit.
	FlushOnOverflow Policy = iota
	// GrowOnOverflow doubles capacity until the write fits and never
	// flushes implicitly.
	GrowOnOverflow
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case FlushOnOverflow:
		return "flush-on-overflow"
	case GrowOnOverflow:
		return "grow-on-overflow"
	default:
		return "unknown"
	}
}

const (
	// DefaultSize is the capacity of buffers bound to an explicit destination.
	DefaultSize = 4096
	// StdoutSize is the capacity of the default stdout buffer.
	StdoutSize = 8 * 1024
)

// Buffer accumulates bytes bound to a destination stream. It is an owned
// value: Release reclaims its storage and must be called exactly once.
type Buffer struct {
	data   []byte // len(data) is the capacity
	n      int    // pending bytes
	dst    io.Writer
	policy Policy
	h      ownership.Handle
}

type config struct {
	dst     io.Writer
	size    int64
	sizeSet bool
	policy  Policy
}

// Option configures a Buffer at creation.
type Option func(*config)

// WithWriter binds the buffer to a destination other than standard output.
// Unless WithSize is also given, the capacity defaults to DefaultSize.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.dst = w
		if !c.sizeSet {
			c.size = DefaultSize
		}
	}
}

// WithSize sets the initial capacity. Sizes of zero or less fall back to
// DefaultSize.
func WithSize(size int64) Option {
	return func(c *config) {
		if size <= 0 {
			size = DefaultSize
		}
		c.size = size
		c.sizeSet = true
	}
}

// WithPolicy selects the overflow policy.
func WithPolicy(p Policy) Option {
	return func(c *config) {
		c.policy = p
	}
}

// New creates a buffer. With no options it is bound to standard output with
// StdoutSize capacity and the FlushOnOverflow policy.
func New(opts ...Option) *Buffer {
	cfg := config{dst: os.Stdout, size: StdoutSize, policy: FlushOnOverflow}
	for _, o := range opts {
		o(&cfg)
	}
	return &Buffer{
		data:   make([]byte, cfg.size),
		dst:    cfg.dst,
		policy: cfg.policy,
		h:      ownership.OnCreate(ownership.KindBuffer),
	}
}

// Len returns the number of pending bytes.
func (b *Buffer) Len() int64 {
	return int64(b.n)
}

// Cap returns the current capacity.
func (b *Buffer) Cap() int64 {
	return int64(len(b.data))
}

// Policy returns the buffer's overflow policy.
func (b *Buffer) Policy() Policy {
	return b.policy
}

// Write appends s's bytes to the buffer. Writing the empty value is a no-op.
// The caller keeps ownership of s.
func (b *Buffer) Write(s value.Str) error {
	if s.IsEmpty() {
		return nil
	}
	return b.write(value.Raw(s))
}

// WriteLine appends s's bytes followed by a newline. The overflow check
// accounts for the newline up front so a line is never split by a flush.
func (b *Buffer) WriteLine(s value.Str) error {
	return b.writeLine(value.Raw(s))
}

// WriteInt formats v as decimal ASCII and appends it. A formatter overflow
// of the stack scratch is surfaced as an error instead of a silent drop.
func (b *Buffer) WriteInt(v int64) error {
	var scratch [32]byte
	n := value.AppendInt(scratch[:], v)
	if n == 0 {
		return rterrors.Overflow(rterrors.PhaseBuffer, v, "int scratch")
	}
	return b.write(scratch[:n])
}

// WriteIntLine formats v as decimal ASCII and appends it with a trailing
// newline.
func (b *Buffer) WriteIntLine(v int64) error {
	var scratch [32]byte
	n := value.AppendInt(scratch[:], v)
	if n == 0 {
		return rterrors.Overflow(rterrors.PhaseBuffer, v, "int scratch")
	}
	return b.writeLine(scratch[:n])
}

// Flush performs a single destination write of exactly the pending bytes and
// resets the pending length. Flushing an empty buffer is a no-op.
func (b *Buffer) Flush() error {
	if b.n == 0 {
		return nil
	}

	pending := b.n
	b.n = 0
	n, err := b.dst.Write(b.data[:pending])
	if err != nil {
		return rterrors.WriteFailed(rterrors.PhaseBuffer, err, "flush")
	}
	if n != pending {
		return rterrors.ShortWrite(rterrors.PhaseBuffer, n, pending)
	}

	logger().Debug("buffer flushed", zap.Int("bytes", n))
	return nil
}

// Release frees the backing storage without flushing; pending bytes are
// discarded. Callers needing delivery must Flush first.
func (b *Buffer) Release() {
	if b.data == nil {
		return
	}
	ownership.OnRelease(b.h)
	b.data = nil
	b.n = 0
	b.h = 0
}

// Duplicate returns an independent buffer with the same capacity, pending
// bytes, policy and destination binding. The destination stream itself is
// shared: both buffers write to the same place.
func (b *Buffer) Duplicate() *Buffer {
	if b.data == nil {
		return nil
	}
	dup := &Buffer{
		data:   make([]byte, len(b.data)),
		n:      b.n,
		dst:    b.dst,
		policy: b.policy,
		h:      ownership.OnDuplicate(b.h, ownership.KindBuffer),
	}
	copy(dup.data, b.data[:b.n])
	return dup
}

// write appends p, applying the overflow policy first.
func (b *Buffer) write(p []byte) error {
	if err := b.ensure(len(p)); err != nil {
		return err
	}
	if b.policy == FlushOnOverflow && len(p) >= len(b.data) {
		// Cannot fit even in an empty buffer: bypass it. ensure already
		// flushed, so ordering is preserved.
		return b.writeDirect(p)
	}
	copy(b.data[b.n:], p)
	b.n += len(p)
	return nil
}

// writeLine appends p plus a newline atomically with respect to flushing.
func (b *Buffer) writeLine(p []byte) error {
	if err := b.ensure(len(p) + 1); err != nil {
		return err
	}
	if b.policy == FlushOnOverflow && len(p)+1 >= len(b.data) {
		line := make([]byte, len(p)+1)
		copy(line, p)
		line[len(p)] = '\n'
		return b.writeDirect(line)
	}
	copy(b.data[b.n:], p)
	b.n += len(p)
	b.data[b.n] = '\n'
	b.n++
	return nil
}

// ensure makes room for n more bytes: a no-op while n pending bytes stay
// strictly below capacity, otherwise flush or grow per policy.
func (b *Buffer) ensure(n int) error {
	if b.n+n < len(b.data) {
		return nil
	}
	if b.policy == GrowOnOverflow {
		newCap := len(b.data)
		for b.n+n >= newCap {
			newCap *= 2
		}
		data := make([]byte, newCap)
		copy(data, b.data[:b.n])
		b.data = data
		return nil
	}
	return b.Flush()
}

func (b *Buffer) writeDirect(p []byte) error {
	n, err := b.dst.Write(p)
	if err != nil {
		return rterrors.WriteFailed(rterrors.PhaseBuffer, err, "direct write")
	}
	if n != len(p) {
		return rterrors.ShortWrite(rterrors.PhaseBuffer, n, len(p))
	}
	return nil
}
