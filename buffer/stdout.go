package buffer

import (
	"os"

	"github.com/fedesilva/minnieml/value"
)

// std is the process-wide default output buffer, created lazily on first use
// and bound to standard output. It exists solely to batch writes without
// forcing every call site to thread a buffer handle explicitly. Safe only
// under the runtime's single-goroutine discipline.
var std *Buffer

// Stdout returns the default stdout buffer, creating it on first use.
func Stdout() *Buffer {
	if std == nil {
		std = New()
	}
	return std
}

// FlushStdout flushes the default buffer if it exists.
func FlushStdout() error {
	if std == nil {
		return nil
	}
	return std.Flush()
}

// ResetStdout is the teardown boundary for the default buffer: it flushes,
// releases and clears it. The next Stdout call creates a fresh one.
func ResetStdout() error {
	if std == nil {
		return nil
	}
	err := std.Flush()
	std.Release()
	std = nil
	return err
}

// Print writes s directly to standard output, bypassing the default buffer.
// Interleaving Print with buffered writes requires a FlushStdout in between,
// otherwise output ordering is undefined.
func Print(s value.Str) {
	if s.IsEmpty() {
		return
	}
	os.Stdout.Write(value.Raw(s))
}

// Println writes s and a trailing newline through the default buffer.
// Writing the empty value is a no-op, newline included.
func Println(s value.Str) error {
	if s.IsEmpty() {
		return nil
	}
	return Stdout().WriteLine(s)
}
