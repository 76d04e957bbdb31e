// Package vector implements a resizable array with explicit capacity
// management. See doc.go for an overview.
package vector

import (
	"fmt"
	"iter"
	"math"
)

const (
	// GrowthFactor is the multiplier applied to the capacity when an
	// append or insert finds the buffer full.
	GrowthFactor = 2
	// MinGrowCapacity is the capacity an empty vector grows to.
	MinGrowCapacity = 1
)

// Vector is a contiguous, resizable sequence of T. Elements in [0, Len)
// are live; slots in [Len, Cap) are zeroed and carry no meaning.
//
// The zero value is an empty vector ready to use. Vector is not
// goroutine-safe and must not be copied by value; use Clone for a deep
// copy and Move or Swap to transfer ownership.
type Vector[T any] struct {
	size     int
	buf      Buffer[T]
	reallocs int
}

// ReserveRequest asks for capacity without creating live elements.
// It keeps "n reserved slots" apart from "n zero elements".
type ReserveRequest struct {
	Capacity int
}

// Reserve wraps a capacity for NewReserved.
func Reserve(capacity int) ReserveRequest {
	return ReserveRequest{Capacity: capacity}
}

// New returns an empty vector with no allocated storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized returns a vector of n zero-valued elements with capacity n.
func NewSized[T any](n int) (*Vector[T], error) {
	buf, err := NewBuffer[T](n)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{size: n, buf: buf}, nil
}

// NewFilled returns a vector of n copies of value with capacity n.
func NewFilled[T any](n int, value T) (*Vector[T], error) {
	v, err := NewSized[T](n)
	if err != nil {
		return nil, err
	}
	for i := range v.buf.items {
		v.buf.items[i] = value
	}
	return v, nil
}

// Of returns a vector holding a copy of items, in order.
func Of[T any](items ...T) (*Vector[T], error) {
	v, err := NewSized[T](len(items))
	if err != nil {
		return nil, err
	}
	copy(v.buf.items, items)
	return v, nil
}

// NewReserved returns an empty vector with r.Capacity slots allocated.
func NewReserved[T any](r ReserveRequest) (*Vector[T], error) {
	buf, err := NewBuffer[T](r.Capacity)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{buf: buf}, nil
}

// Len returns the number of live elements. A nil vector has length 0.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return v.buf.Cap()
}

// IsEmpty reports whether Len() == 0.
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Index returns a pointer to element i without checking i against Len.
// The caller guarantees 0 <= i < Len(). Indexing past the capacity
// panics in the runtime; indexing into [Len, Cap) yields a dead slot.
func (v *Vector[T]) Index(i int) *T {
	assert(i >= 0 && i < v.size, "Index out of range")
	return v.buf.Slot(i)
}

// Get returns element i. Same contract as Index.
func (v *Vector[T]) Get(i int) T {
	return *v.Index(i)
}

// Set overwrites element i. Same contract as Index.
func (v *Vector[T]) Set(i int, x T) {
	*v.Index(i) = x
}

// At returns a pointer to element i, or an *IndexError matching
// ErrIndexOutOfRange when i is not in [0, Len()).
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.Len() {
		return nil, &IndexError{Index: i, Len: v.Len()}
	}
	return v.buf.Slot(i), nil
}

// Reserve makes Cap() at least capacity, moving the live elements into a
// new buffer when it has to grow. It never shrinks the vector. On error
// the vector is unchanged.
func (v *Vector[T]) Reserve(capacity int) error {
	if capacity <= v.buf.Cap() {
		return nil
	}
	return v.reallocate(capacity)
}

// Clear drops all elements. The capacity is kept.
func (v *Vector[T]) Clear() {
	clear(v.buf.items[:v.size])
	v.size = 0
}

// Resize sets the length to n. Shrinking truncates. Growing within the
// capacity zeroes the new slots; growing past it first reallocates to
// max(n, GrowthFactor*Cap()).
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		return &AllocError{Requested: n, ElemSize: elemSizeOf[T]()}
	case n < v.size:
		clear(v.buf.items[n:v.size])
	case n <= v.buf.Cap():
		clear(v.buf.items[v.size:n])
	default:
		if err := v.reallocate(max(n, grownCapacity(v.buf.Cap()))); err != nil {
			return err
		}
	}
	v.size = n
	return nil
}

// PushBack appends x, doubling the capacity first when the vector is full.
func (v *Vector[T]) PushBack(x T) error {
	if v.size == v.buf.Cap() {
		if err := v.grow(); err != nil {
			return err
		}
	}
	v.buf.items[v.size] = x
	v.size++
	return nil
}

// Insert writes x at pos, shifting [pos, Len) one slot to the right, and
// returns pos. pos must be in [0, Len()]. A full vector is grown the same
// way PushBack grows it.
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	assert(pos >= 0 && pos <= v.size, "Insert position out of range")
	if v.size == v.buf.Cap() {
		if err := v.grow(); err != nil {
			return pos, err
		}
	}
	items := v.buf.items
	copy(items[pos+1:v.size+1], items[pos:v.size])
	items[pos] = x
	v.size++
	return pos, nil
}

// PopBack removes the last element. Calling it on an empty vector is a
// contract violation; release builds ignore it.
func (v *Vector[T]) PopBack() {
	assert(v.size > 0, "PopBack on empty vector")
	if v.size == 0 {
		return
	}
	v.size--
	var zero T
	v.buf.items[v.size] = zero
}

// Erase removes the element at pos, shifting [pos+1, Len) one slot to the
// left, and returns pos, which now holds the element that followed the
// erased one. pos must be in [0, Len()).
func (v *Vector[T]) Erase(pos int) int {
	assert(pos >= 0 && pos < v.size, "Erase position out of range")
	items := v.buf.items
	copy(items[pos:], items[pos+1:v.size])
	v.size--
	var zero T
	items[v.size] = zero
	return pos
}

// Swap exchanges the contents of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.size, other.size = other.size, v.size
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
	v.buf.Swap(&other.buf)
}

// Clone returns a deep copy of v with capacity Len().
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c, err := NewSized[T](v.Len())
	if err != nil {
		return nil, err
	}
	copy(c.buf.items, v.Slice())
	return c, nil
}

// CopyFrom replaces the contents of v with a deep copy of src.
// The copy is built before v is touched, so on error v is unchanged.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	tmp, err := src.Clone()
	if err != nil {
		return err
	}
	v.Swap(tmp)
	return nil
}

// Move transfers the contents of v to a new vector and leaves v empty
// with no storage.
func (v *Vector[T]) Move() *Vector[T] {
	moved := &Vector[T]{size: v.size, buf: v.buf.Move(), reallocs: v.reallocs}
	v.size, v.reallocs = 0, 0
	return moved
}

// MoveFrom takes over the contents of src, leaving src empty with no
// storage. The previous contents of v are dropped.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Move()
	v.Swap(tmp)
}

// Slice returns the live elements [0, Len) as a slice sharing storage
// with v. The view is capped at Len, and any operation that reallocates
// detaches it from v.
func (v *Vector[T]) Slice() []T {
	if v == nil {
		return nil
	}
	return v.buf.items[:v.size:v.size]
}

// All returns an iterator over index/element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.buf.items[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(v.buf.items[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs from the back.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			if !yield(i, v.buf.items[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}

// grow makes room for one more element using the doubling policy.
func (v *Vector[T]) grow() error {
	return v.reallocate(grownCapacity(v.buf.Cap()))
}

// reallocate moves the live elements into a fresh buffer of capacity slots.
func (v *Vector[T]) reallocate(capacity int) error {
	next, err := NewBuffer[T](capacity)
	if err != nil {
		return err
	}
	copy(next.items, v.buf.items[:v.size])
	v.buf.Swap(&next)
	v.reallocs++
	return nil
}

// grownCapacity returns the capacity a full buffer of capacity c grows to.
func grownCapacity(c int) int {
	if c > math.MaxInt/GrowthFactor {
		return math.MaxInt
	}
	return max(MinGrowCapacity, GrowthFactor*c)
}
