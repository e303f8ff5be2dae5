package value

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/fedesilva/minnieml/ownership"
)

// exitFn is the process-termination hook for checked access violations.
// Tests replace it to observe the fault; compiled programs never do.
var exitFn = os.Exit

// boundsFault reports a checked access violation and terminates the process.
// There is no recovery path: an out-of-bounds index here means the compiler's
// bounds proofs were bypassed or violated.
func boundsFault(kind string, idx, length int64) {
	fmt.Fprintf(os.Stderr, "%s index out of bounds: %d (length: %d)\n", kind, idx, length)
	exitFn(1)
}

// IntArray is a heap-owned, fixed-length array of int64. The zero IntArray
// is the canonical empty array.
type IntArray struct {
	data []int64
	h    ownership.Handle
}

// NewIntArray allocates an array of length zero-valued elements. A length of
// zero or less yields the canonical empty array with no allocation.
func NewIntArray(length int64) IntArray {
	if length <= 0 {
		return IntArray{}
	}
	return IntArray{
		data: make([]int64, length),
		h:    ownership.OnCreate(ownership.KindIntArray),
	}
}

// Len returns the fixed length of the array.
func (a IntArray) Len() int64 {
	return int64(len(a.data))
}

// Get returns the element at idx. An index outside [0, Len) terminates the
// process with a bounds diagnostic.
func (a IntArray) Get(idx int64) int64 {
	if a.data == nil || idx < 0 || idx >= int64(len(a.data)) {
		boundsFault("IntArray", idx, a.Len())
		return 0
	}
	return a.data[idx]
}

// Set stores v at idx. An index outside [0, Len) terminates the process with
// a bounds diagnostic.
func (a IntArray) Set(idx, v int64) {
	if a.data == nil || idx < 0 || idx >= int64(len(a.data)) {
		boundsFault("IntArray", idx, a.Len())
		return
	}
	a.data[idx] = v
}

// UncheckedGet returns the element at idx with no validation. It exists for
// code the compiler has already proven in-bounds; an out-of-range idx is
// undefined behavior.
func (a IntArray) UncheckedGet(idx int64) int64 {
	p := unsafe.Add(unsafe.Pointer(unsafe.SliceData(a.data)), uintptr(idx)*unsafe.Sizeof(int64(0)))
	return *(*int64)(p)
}

// UncheckedSet stores v at idx with no validation. An out-of-range idx is
// undefined behavior.
func (a IntArray) UncheckedSet(idx, v int64) {
	p := unsafe.Add(unsafe.Pointer(unsafe.SliceData(a.data)), uintptr(idx)*unsafe.Sizeof(int64(0)))
	*(*int64)(p) = v
}

// Release frees the backing storage.
func (a *IntArray) Release() {
	if a.data == nil {
		return
	}
	ownership.OnRelease(a.h)
	a.data = nil
	a.h = 0
}

// Duplicate returns a bulk copy sharing no storage with a.
func (a IntArray) Duplicate() IntArray {
	if a.data == nil {
		return IntArray{}
	}
	data := make([]int64, len(a.data))
	copy(data, a.data)
	return IntArray{data: data, h: ownership.OnDuplicate(a.h, ownership.KindIntArray)}
}

// StrArray is a heap-owned, fixed-length array of owned strings. The zero
// StrArray is the canonical empty array.
type StrArray struct {
	data []Str
	h    ownership.Handle
}

// NewStrArray allocates an array of length empty strings. A length of zero
// or less yields the canonical empty array with no allocation.
func NewStrArray(length int64) StrArray {
	if length <= 0 {
		return StrArray{}
	}
	return StrArray{
		data: make([]Str, length),
		h:    ownership.OnCreate(ownership.KindStrArray),
	}
}

// Len returns the fixed length of the array.
func (a StrArray) Len() int64 {
	return int64(len(a.data))
}

// Get returns the element at idx. The array keeps ownership of the element;
// callers that need to outlive the slot must Duplicate the result. An index
// outside [0, Len) terminates the process with a bounds diagnostic.
func (a StrArray) Get(idx int64) Str {
	if a.data == nil || idx < 0 || idx >= int64(len(a.data)) {
		boundsFault("StrArray", idx, a.Len())
		return Str{}
	}
	return a.data[idx]
}

// Set stores s at idx, taking ownership of s. The previous occupant is
// overwritten without being released; the compiler releases slots it proved
// dead. An index outside [0, Len) terminates the process with a bounds
// diagnostic.
func (a StrArray) Set(idx int64, s Str) {
	if a.data == nil || idx < 0 || idx >= int64(len(a.data)) {
		boundsFault("StrArray", idx, a.Len())
		return
	}
	a.data[idx] = s
}

// UncheckedGet returns the element at idx with no validation. An
// out-of-range idx is undefined behavior.
func (a StrArray) UncheckedGet(idx int64) Str {
	p := unsafe.Add(unsafe.Pointer(unsafe.SliceData(a.data)), uintptr(idx)*unsafe.Sizeof(Str{}))
	return *(*Str)(p)
}

// UncheckedSet stores s at idx with no validation, taking ownership of s.
// An out-of-range idx is undefined behavior.
func (a StrArray) UncheckedSet(idx int64, s Str) {
	p := unsafe.Add(unsafe.Pointer(unsafe.SliceData(a.data)), uintptr(idx)*unsafe.Sizeof(Str{}))
	*(*Str)(p) = s
}

// Release releases every element, then the backing storage.
func (a *StrArray) Release() {
	if a.data == nil {
		return
	}
	for i := range a.data {
		a.data[i].Release()
	}
	ownership.OnRelease(a.h)
	a.data = nil
	a.h = 0
}

// Duplicate returns an element-wise deep copy sharing no storage with a.
func (a StrArray) Duplicate() StrArray {
	if a.data == nil {
		return StrArray{}
	}
	data := make([]Str, len(a.data))
	for i := range a.data {
		data[i] = a.data[i].Duplicate()
	}
	return StrArray{data: data, h: ownership.OnDuplicate(a.h, ownership.KindStrArray)}
}
