package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by errors returned from checked access.
	ErrIndexOutOfRange = errors.New("vector: index out of range")
	// ErrAllocation is matched by errors returned when storage cannot be obtained.
	ErrAllocation = errors.New("vector: allocation failed")
)

// IndexError reports a checked access at an index not less than the length.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0:%d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// AllocError reports a capacity request that could not be satisfied.
type AllocError struct {
	Requested int     // number of slots asked for
	ElemSize  uintptr // size of one slot in bytes
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("vector: cannot allocate %d slots of %d bytes", e.Requested, e.ElemSize)
}

func (e *AllocError) Unwrap() error { return ErrAllocation }

// Must panics if err is non-nil and returns v otherwise.
// It is meant for callers that treat allocation failure as fatal:
//
//	v := vector.Must(vector.Of(1, 2, 3))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
