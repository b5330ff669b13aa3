package alignedbuf

import (
	"errors"
	"fmt"
	"unsafe"
)

// Alignment is the required byte alignment for FFT-facing buffers.
const Alignment = 64

// ErrAlloc is returned when the requested length cannot be allocated.
var ErrAlloc = errors.New("alignedbuf: allocation failed")

// Float32 returns a float32 slice of length n whose backing array starts
// on a 64-byte boundary.
//
// The original C++ source (Valigned_malloc) over-allocates, masks the
// pointer to the next aligned address, and stores the raw pointer just
// before the aligned one so it can be freed later. Go's garbage collector
// already tracks the raw allocation through the backing array returned by
// make, so no equivalent of Valigned_free is needed: once the aligned
// slice (and therefore the byte slice it's carved from) goes out of scope,
// the whole allocation is reclaimed normally.
func Float32(n int) (buf []float32, err error) {
	if n <= 0 {
		return nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", ErrAlloc, r)
		}
	}()

	const elemSize = 4
	raw := make([]byte, n*elemSize+Alignment-1)

	base := uintptr(unsafe.Pointer(&raw[0]))
	aligned := (base + Alignment - 1) &^ (Alignment - 1)
	offset := aligned - base

	ptr := (*float32)(unsafe.Pointer(&raw[offset]))
	buf = unsafe.Slice(ptr, n)

	return buf, nil
}

// Complex64 returns a complex64 slice of length n, 64-byte aligned,
// for use as FFT scratch space.
func Complex64(n int) (buf []complex64, err error) {
	if n <= 0 {
		return nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", ErrAlloc, r)
		}
	}()

	const elemSize = 8
	raw := make([]byte, n*elemSize+Alignment-1)

	base := uintptr(unsafe.Pointer(&raw[0]))
	aligned := (base + Alignment - 1) &^ (Alignment - 1)
	offset := aligned - base

	ptr := (*complex64)(unsafe.Pointer(&raw[offset]))
	buf = unsafe.Slice(ptr, n)

	return buf, nil
}
