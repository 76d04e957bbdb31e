package vector

import (
	"math/bits"
	"unsafe"
)

// maxAllocBytes is the largest block allocSlots will ask the runtime for.
// It stays under the runtime's own limit so oversized requests come back
// as an AllocError instead of a makeslice panic.
const maxAllocBytes = 1 << (31 + (bits.UintSize/64)*16)

// allocSlots returns a block of n zeroed slots of type T.
// It returns nil for n == 0 and an *AllocError when n is negative or
// n slots of T do not fit in maxAllocBytes.
func allocSlots[T any](n int) ([]T, error) {
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if n < 0 {
		return nil, &AllocError{Requested: n, ElemSize: elemSize}
	}
	if n == 0 {
		return nil, nil
	}
	if elemSize != 0 {
		hi, total := bits.Mul(uint(n), uint(elemSize))
		if hi != 0 || total > maxAllocBytes {
			return nil, &AllocError{Requested: n, ElemSize: elemSize}
		}
	}
	return make([]T, n), nil
}

// elemSizeOf reports the size in bytes of one slot of T.
func elemSizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
