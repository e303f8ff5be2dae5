package value

import (
	"github.com/fedesilva/minnieml/ownership"
)

// Str is an owned, immutable-by-convention byte string. The zero Str is the
// canonical empty value: nil storage, length zero.
type Str struct {
	data []byte
	h    ownership.Handle
}

// newStr takes ownership of data. The caller must not retain the slice.
func newStr(data []byte) Str {
	if len(data) == 0 {
		return Str{}
	}
	return Str{data: data, h: ownership.OnCreate(ownership.KindStr)}
}

// FromString copies s into freshly owned storage.
func FromString(s string) Str {
	if len(s) == 0 {
		return Str{}
	}
	return newStr([]byte(s))
}

// FromBytes copies b into freshly owned storage. The caller keeps b.
func FromBytes(b []byte) Str {
	if len(b) == 0 {
		return Str{}
	}
	data := make([]byte, len(b))
	copy(data, b)
	return newStr(data)
}

// Concat returns a new Str holding a's bytes followed by b's bytes. If one
// input is empty the result is a fresh copy of the other, never an alias;
// both inputs remain owned by the caller. If both are empty the result is
// the canonical empty value.
func Concat(a, b Str) Str {
	total := len(a.data) + len(b.data)
	if total == 0 {
		return Str{}
	}
	data := make([]byte, 0, total)
	data = append(data, a.data...)
	data = append(data, b.data...)
	return newStr(data)
}

// Substring returns a fresh copy of length bytes of s starting at start.
// If start is outside s, or s is empty, the result is the canonical empty
// value. length is clamped so the range never passes the end of s.
func Substring(s Str, start, length int64) Str {
	if s.data == nil || start < 0 || start >= int64(len(s.data)) || length <= 0 {
		return Str{}
	}
	if start+length > int64(len(s.data)) {
		length = int64(len(s.data)) - start
	}
	data := make([]byte, length)
	copy(data, s.data[start:start+length])
	return newStr(data)
}

// Len returns the number of bytes in s.
func (s Str) Len() int64 {
	return int64(len(s.data))
}

// IsEmpty reports whether s is the canonical empty value or zero length.
func (s Str) IsEmpty() bool {
	return len(s.data) == 0
}

// String returns a copy of the content as a Go string.
func (s Str) String() string {
	return string(s.data)
}

// Bytes returns a copy of the content. The backing storage is never exposed.
func (s Str) Bytes() []byte {
	b := make([]byte, len(s.data))
	copy(b, s.data)
	return b
}

// Release drops the backing storage. The compiler calls this exactly once
// per owned Str; releasing the canonical empty value is a no-op.
func (s *Str) Release() {
	if s.data == nil {
		return
	}
	ownership.OnRelease(s.h)
	s.data = nil
	s.h = 0
}

// Duplicate returns a deep copy sharing no storage with s.
func (s Str) Duplicate() Str {
	if s.data == nil {
		return Str{}
	}
	data := make([]byte, len(s.data))
	copy(data, s.data)
	return Str{data: data, h: ownership.OnDuplicate(s.h, ownership.KindStr)}
}

// raw exposes the backing bytes to sibling runtime packages through Raw.
// Callers must treat the slice as read-only and must not retain it past the
// value's release.
func (s Str) raw() []byte {
	return s.data
}

// Raw returns the backing bytes without copying. It exists for the runtime's
// own write paths (buffer, sysio); compiled code never sees it. The slice is
// read-only and valid only until s is released.
func Raw(s Str) []byte {
	return s.raw()
}
