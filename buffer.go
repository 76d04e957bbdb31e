package vector

// Buffer owns a single fixed-capacity block of slots. It never resizes
// itself: growing means building a larger Buffer and moving into it.
//
// A Buffer is move-only. Copying the struct would alias the block, so
// ownership is handed on with Move or Swap and element-wise copies are
// made by Vector. The zero value is an empty buffer with a nil block.
type Buffer[T any] struct {
	items []T // len(items) is the capacity; nil when the capacity is 0
}

// NewBuffer allocates a buffer of capacity zeroed slots.
// A capacity of 0 allocates nothing.
func NewBuffer[T any](capacity int) (Buffer[T], error) {
	items, err := allocSlots[T](capacity)
	if err != nil {
		return Buffer[T]{}, err
	}
	return Buffer[T]{items: items}, nil
}

// Cap returns the number of slots in the block.
func (b *Buffer[T]) Cap() int {
	return len(b.items)
}

// IsNil reports whether the buffer owns no block.
func (b *Buffer[T]) IsNil() bool {
	return b.items == nil
}

// Slot returns a pointer to slot i. The caller guarantees i < Cap();
// only the capacity is checked, and only by the runtime.
func (b *Buffer[T]) Slot(i int) *T {
	return &b.items[i]
}

// Slots returns the whole block, live or not.
func (b *Buffer[T]) Slots() []T {
	return b.items
}

// Move transfers the block to the returned buffer and leaves b empty.
func (b *Buffer[T]) Move() Buffer[T] {
	moved := Buffer[T]{items: b.items}
	b.items = nil
	return moved
}

// Release hands the block to the caller and leaves b empty.
func (b *Buffer[T]) Release() []T {
	items := b.items
	b.items = nil
	return items
}

// Swap exchanges blocks with other without touching any element.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.items, other.items = other.items, b.items
}
