package sysio

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/fedesilva/minnieml/buffer"
	rterrors "github.com/fedesilva/minnieml/errors"
	"github.com/fedesilva/minnieml/value"
)

// Preopened descriptors.
const (
	Stdin  = 0
	Stdout = 1
	Stderr = 2
)

// filePerm is the creation mode for opened files: owner read/write,
// group/other read.
const filePerm = 0o644

// streamTable maps integer descriptors to open files. Descriptors 0-2 are
// preopened to the process's standard streams.
type streamTable struct {
	files map[int]*os.File
	next  int
}

func newStreamTable() *streamTable {
	return &streamTable{
		files: map[int]*os.File{
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		},
		next: 3,
	}
}

func (t *streamTable) add(f *os.File) int {
	fd := t.next
	t.next++
	t.files[fd] = f
	return fd
}

func (t *streamTable) get(fd int) (*os.File, bool) {
	f, ok := t.files[fd]
	return f, ok
}

func (t *streamTable) remove(fd int) (*os.File, bool) {
	f, ok := t.files[fd]
	if ok {
		delete(t.files, fd)
	}
	return f, ok
}

var streams = newStreamTable()

// OpenRead opens path read-only and returns its descriptor.
func OpenRead(path value.Str) (int, error) {
	return open(path, os.O_RDONLY)
}

// OpenWrite opens path for writing, truncating or creating it, and returns
// its descriptor.
func OpenWrite(path value.Str) (int, error) {
	return open(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

// OpenAppend opens path for appending, creating it if needed, and returns
// its descriptor.
func OpenAppend(path value.Str) (int, error) {
	return open(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND)
}

func open(path value.Str, flags int) (int, error) {
	name := path.String()
	f, err := os.OpenFile(name, flags, filePerm)
	if err != nil {
		return -1, rterrors.Wrap(rterrors.PhaseIO, rterrors.KindOpenFailed, err, "open "+name)
	}
	fd := streams.add(f)
	logger().Debug("stream opened", zap.String("path", name), zap.Int("fd", fd))
	return fd, nil
}

// Read fills p from the descriptor and returns the byte count. End of
// stream is reported as a zero count, not an error.
func Read(fd int, p []byte) (int, error) {
	f, ok := streams.get(fd)
	if !ok {
		return 0, rterrors.NotFound(rterrors.PhaseIO, "descriptor", fd)
	}
	n, err := f.Read(p)
	if err == io.EOF {
		return n, nil
	}
	if err != nil {
		return n, rterrors.Wrap(rterrors.PhaseIO, rterrors.KindReadFailed, err, "read")
	}
	return n, nil
}

// Write writes p to the descriptor.
func Write(fd int, p []byte) (int, error) {
	f, ok := streams.get(fd)
	if !ok {
		return 0, rterrors.NotFound(rterrors.PhaseIO, "descriptor", fd)
	}
	n, err := f.Write(p)
	if err != nil {
		return n, rterrors.WriteFailed(rterrors.PhaseIO, err, "write")
	}
	return n, nil
}

// WriteStr writes s's bytes to the descriptor. The caller keeps ownership
// of s.
func WriteStr(fd int, s value.Str) (int, error) {
	if s.IsEmpty() {
		return 0, nil
	}
	return Write(fd, value.Raw(s))
}

// Close closes the descriptor and removes it from the table. The preopened
// standard descriptors cannot be closed.
func Close(fd int) error {
	if fd >= Stdin && fd <= Stderr {
		return rterrors.InvalidInput(rterrors.PhaseIO, "cannot close a standard descriptor")
	}
	f, ok := streams.remove(fd)
	if !ok {
		return rterrors.NotFound(rterrors.PhaseIO, "descriptor", fd)
	}
	logger().Debug("stream closed", zap.Int("fd", fd))
	return f.Close()
}

// ReadLine reads bytes from the descriptor until a newline or end of
// stream; the newline is consumed but not returned. Reading from standard
// input flushes the default stdout buffer first, so prompts written through
// it are visible before the program blocks. End of stream with nothing read
// yields the canonical empty value.
func ReadLine(fd int) (value.Str, error) {
	if fd == Stdin {
		if err := buffer.FlushStdout(); err != nil {
			return value.Str{}, err
		}
	}

	f, ok := streams.get(fd)
	if !ok {
		return value.Str{}, rterrors.NotFound(rterrors.PhaseIO, "descriptor", fd)
	}

	var line []byte
	var one [1]byte
	for {
		n, err := f.Read(one[:])
		if n == 1 {
			if one[0] == '\n' {
				break
			}
			line = append(line, one[0])
			continue
		}
		if err == io.EOF || err == nil {
			break
		}
		return value.Str{}, rterrors.Wrap(rterrors.PhaseIO, rterrors.KindReadFailed, err, "read line")
	}

	return value.FromBytes(line), nil
}

// ReadLineStdin reads one line from standard input. It returns the
// canonical empty value at end of input.
func ReadLineStdin() value.Str {
	s, err := ReadLine(Stdin)
	if err != nil {
		return value.Str{}
	}
	return s
}
