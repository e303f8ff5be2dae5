package buffer

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	rterrors "github.com/fedesilva/minnieml/errors"
	"github.com/fedesilva/minnieml/ownership"
	"github.com/fedesilva/minnieml/value"
)

// recordingWriter captures every destination write separately so tests can
// assert flush counts and flush sizes.
type recordingWriter struct {
	writes [][]byte
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	cp := make([]byte, len(p))
	copy(cp, p)
	w.writes = append(w.writes, cp)
	return len(p), nil
}

func (w *recordingWriter) bytes() []byte {
	var all []byte
	for _, p := range w.writes {
		all = append(all, p...)
	}
	return all
}

func TestWrite_Buffered(t *testing.T) {
	dst := &recordingWriter{}
	b := New(WithWriter(dst), WithSize(16))

	if err := b.Write(value.FromString("hello")); err != nil {
		t.Fatal(err)
	}
	if len(dst.writes) != 0 {
		t.Fatal("write below capacity must not touch the destination")
	}
	if b.Len() != 5 {
		t.Fatalf("Len = %d, want 5", b.Len())
	}

	if err := b.Flush(); err != nil {
		t.Fatal(err)
	}
	if len(dst.writes) != 1 || string(dst.writes[0]) != "hello" {
		t.Fatalf("flush writes = %q", dst.writes)
	}
	if b.Len() != 0 {
		t.Fatal("flush must reset the pending length")
	}
}

func TestWrite_OverflowBoundary(t *testing.T) {
	const capacity = 16

	// Exactly capacity-length-1 more bytes: no flush.
	dst := &recordingWriter{}
	b := New(WithWriter(dst), WithSize(capacity))
	b.Write(value.FromString("abcd")) // length 4
	b.Write(value.FromString(strings.Repeat("x", capacity-4-1)))
	if len(dst.writes) != 0 {
		t.Fatal("write filling to capacity-1 must not flush")
	}
	if b.Len() != capacity-1 {
		t.Fatalf("Len = %d, want %d", b.Len(), capacity-1)
	}

	// One byte more: exactly one flush before the copy.
	dst = &recordingWriter{}
	b = New(WithWriter(dst), WithSize(capacity))
	b.Write(value.FromString("abcd"))
	b.Write(value.FromString(strings.Repeat("x", capacity-4)))
	if len(dst.writes) != 1 {
		t.Fatalf("expected exactly one flush, got %d destination writes", len(dst.writes))
	}
	if string(dst.writes[0]) != "abcd" {
		t.Fatalf("flushed %q, want the previously pending bytes", dst.writes[0])
	}
	if b.Len() != capacity-4 {
		t.Fatalf("Len = %d after overflow flush", b.Len())
	}
}

func TestWriteLine_AccountsForNewline(t *testing.T) {
	dst := &recordingWriter{}
	b := New(WithWriter(dst), WithSize(8))

	// "abc" + newline = 4 pending.
	if err := b.WriteLine(value.FromString("abc")); err != nil {
		t.Fatal(err)
	}
	if len(dst.writes) != 0 {
		t.Fatal("first line fits, no flush expected")
	}

	// Another 4 bytes would reach capacity: flush first, never a torn line.
	if err := b.WriteLine(value.FromString("abc")); err != nil {
		t.Fatal(err)
	}
	if len(dst.writes) != 1 {
		t.Fatalf("expected one flush, got %d", len(dst.writes))
	}
	if string(dst.writes[0]) != "abc\n" {
		t.Fatalf("flush emitted a torn line: %q", dst.writes[0])
	}

	b.Flush()
	if got := string(dst.bytes()); got != "abc\nabc\n" {
		t.Fatalf("stream = %q", got)
	}
}

func TestWriteLine_EmptyValue(t *testing.T) {
	dst := &recordingWriter{}
	b := New(WithWriter(dst), WithSize(8))

	if err := b.WriteLine(value.Str{}); err != nil {
		t.Fatal(err)
	}
	b.Flush()
	if got := string(dst.bytes()); got != "\n" {
		t.Fatalf("empty line = %q, want %q", got, "\n")
	}
}

func TestWrite_LargePayloadBypasses(t *testing.T) {
	dst := &recordingWriter{}
	b := New(WithWriter(dst), WithSize(8))

	b.Write(value.FromString("ab"))
	payload := strings.Repeat("y", 20)
	if err := b.Write(value.FromString(payload)); err != nil {
		t.Fatal(err)
	}

	// Pending bytes flushed first, then the oversized payload directly.
	if len(dst.writes) != 2 {
		t.Fatalf("expected flush + direct write, got %d writes", len(dst.writes))
	}
	if string(dst.writes[0]) != "ab" || string(dst.writes[1]) != payload {
		t.Fatalf("writes = %q", dst.writes)
	}
	if b.Len() != 0 {
		t.Fatal("bypassed payload must not occupy the buffer")
	}
}

func TestGrowOnOverflow(t *testing.T) {
	dst := &recordingWriter{}
	b := New(WithWriter(dst), WithSize(4), WithPolicy(GrowOnOverflow))

	for i := 0; i < 10; i++ {
		if err := b.Write(value.FromString("0123456789")); err != nil {
			t.Fatal(err)
		}
	}
	if len(dst.writes) != 0 {
		t.Fatal("grow policy must never flush implicitly")
	}
	if b.Len() != 100 {
		t.Fatalf("Len = %d, want 100", b.Len())
	}
	if b.Cap() < 101 {
		t.Fatalf("Cap = %d, expected growth beyond content", b.Cap())
	}

	b.Flush()
	if got := string(dst.bytes()); got != strings.Repeat("0123456789", 10) {
		t.Fatalf("stream = %q", got)
	}
}

func TestWriteInt(t *testing.T) {
	dst := &recordingWriter{}
	b := New(WithWriter(dst), WithSize(64))

	b.WriteInt(-42)
	b.WriteIntLine(7)
	b.Flush()

	if got := string(dst.bytes()); got != "-427\n" {
		t.Fatalf("stream = %q", got)
	}
}

func TestFlush_Empty(t *testing.T) {
	dst := &recordingWriter{}
	b := New(WithWriter(dst))
	if err := b.Flush(); err != nil {
		t.Fatal(err)
	}
	if len(dst.writes) != 0 {
		t.Fatal("flushing an empty buffer must not write")
	}
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return len(p) - 1, nil
}

func TestFlush_ShortWrite(t *testing.T) {
	b := New(WithWriter(shortWriter{}), WithSize(16))
	b.Write(value.FromString("abc"))

	err := b.Flush()
	if !stderrors.Is(err, &rterrors.Error{Phase: rterrors.PhaseBuffer, Kind: rterrors.KindShortWrite}) {
		t.Fatalf("expected short write error, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("stream gone")
}

func TestFlush_WriteFailure(t *testing.T) {
	b := New(WithWriter(failingWriter{}), WithSize(16))
	b.Write(value.FromString("abc"))

	err := b.Flush()
	if !stderrors.Is(err, &rterrors.Error{Phase: rterrors.PhaseBuffer, Kind: rterrors.KindWriteFailed}) {
		t.Fatalf("expected write_failed error, got %v", err)
	}
}

func TestDuplicate(t *testing.T) {
	dst := &recordingWriter{}
	b := New(WithWriter(dst), WithSize(32))
	b.Write(value.FromString("pending"))

	dup := b.Duplicate()
	if dup.Len() != b.Len() || dup.Cap() != b.Cap() || dup.Policy() != b.Policy() {
		t.Fatal("duplicate must copy length, capacity and policy")
	}

	// Independent storage: writes to one never show in the other.
	dup.Write(value.FromString("!"))
	if b.Len() != 7 || dup.Len() != 8 {
		t.Fatalf("Len = %d/%d", b.Len(), dup.Len())
	}

	// Both deliver to the same destination.
	b.Flush()
	dup.Flush()
	if got := string(dst.bytes()); got != "pendingpending!" {
		t.Fatalf("stream = %q", got)
	}
}

func TestRelease_DiscardsPending(t *testing.T) {
	ledger := ownership.NewLedger()
	ownership.Track(ledger)
	defer ownership.Untrack()

	dst := &recordingWriter{}
	b := New(WithWriter(dst))
	b.Write(value.FromString("undelivered"))
	b.Release()

	if len(dst.writes) != 0 {
		t.Fatal("release must not flush")
	}
	if ledger.LiveOf(ownership.KindBuffer) != 0 {
		t.Fatal("released buffer still live")
	}
	// Releasing again is a no-op on the cleared struct.
	b.Release()
}

func TestDefaultStdoutBuffer(t *testing.T) {
	defer ResetStdout()

	a := Stdout()
	if a == nil {
		t.Fatal("Stdout returned nil")
	}
	if Stdout() != a {
		t.Fatal("Stdout must return the same lazily created buffer")
	}
	if a.Cap() != StdoutSize {
		t.Fatalf("default capacity = %d, want %d", a.Cap(), StdoutSize)
	}

	if err := ResetStdout(); err != nil {
		t.Fatal(err)
	}
	if Stdout() == a {
		t.Fatal("ResetStdout must clear the default buffer")
	}
}

func TestFlushStdout_WithoutBuffer(t *testing.T) {
	defer ResetStdout()
	ResetStdout()
	// No default buffer exists: the global flush is a no-op.
	if err := FlushStdout(); err != nil {
		t.Fatal(err)
	}
}

func TestFizzBuzzScenario(t *testing.T) {
	dst := &bytes.Buffer{}
	out := New(WithWriter(dst), WithSize(32))

	fizz := value.FromString("Fizz")
	buzz := value.FromString("Buzz")
	fizzbuzz := value.FromString("FizzBuzz")

	for i := int64(1); i <= 15; i++ {
		switch {
		case i%15 == 0:
			out.WriteLine(fizzbuzz)
		case i%3 == 0:
			out.WriteLine(fizz)
		case i%5 == 0:
			out.WriteLine(buzz)
		default:
			out.WriteIntLine(i)
		}
	}
	if err := out.Flush(); err != nil {
		t.Fatal(err)
	}

	want := "1\n2\nFizz\n4\nBuzz\nFizz\n7\n8\nFizz\nBuzz\n11\nFizz\n13\n14\nFizzBuzz\n"
	if got := dst.String(); got != want {
		t.Fatalf("captured stream:\n%q\nwant:\n%q", got, want)
	}
}

func BenchmarkBufferWriteLine(b *testing.B) {
	var sink bytes.Buffer
	buf := New(WithWriter(&sink), WithSize(StdoutSize))
	s := value.FromString("benchmark line payload")
	for i := 0; i < b.N; i++ {
		buf.WriteLine(s)
		sink.Reset()
	}
}

func BenchmarkBufferWriteInt(b *testing.B) {
	var sink bytes.Buffer
	buf := New(WithWriter(&sink), WithSize(StdoutSize))
	for i := 0; i < b.N; i++ {
		buf.WriteIntLine(int64(i))
		sink.Reset()
	}
}
