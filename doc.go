// Package vector implements a generic dynamic array with explicit
// capacity management.
//
// # Overview
//
// A Vector is a contiguous, resizable sequence of elements backed by a
// single Buffer. The vector tracks its length (live elements) apart from
// the buffer's capacity (allocated slots) and grows geometrically, so a
// run of N appends costs O(N) in total:
//
//   - PushBack and Insert double the capacity when the vector is full
//     (an empty vector grows to 1)
//   - Resize past the capacity grows to max(n, 2*Cap())
//   - Reserve grows to exactly the requested capacity
//   - nothing ever shrinks the capacity
//
// # Basic Usage
//
//	var v vector.Vector[int] // ready to use
//	v.PushBack(1)
//	v.PushBack(2)
//	v.Insert(1, 5) // v == [1 5 2]
//
//	x, err := v.At(7) // checked: *IndexError, errors.Is(err, vector.ErrIndexOutOfRange)
//	y := v.Get(0)     // unchecked: caller guarantees 0 <= i < Len()
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Construction
//
//	vector.New[int]()                          // empty, no storage
//	vector.NewSized[int](3)                    // [0 0 0]
//	vector.NewFilled(3, 7)                     // [7 7 7]
//	vector.Of(1, 2, 3)                         // [1 2 3]
//	vector.NewReserved[int](vector.Reserve(8)) // empty, Cap() == 8
//
// Every operation that acquires storage returns an error matching
// ErrAllocation when the request cannot be satisfied. Must turns that
// error into a panic for callers that cannot recover from it.
//
// # Value Semantics
//
// A Vector owns its storage and must not be copied by value. Clone and
// CopyFrom make deep copies; CopyFrom builds the copy before touching the
// destination, so a failed copy leaves it as it was. Move, MoveFrom and
// Swap transfer storage in O(1) and leave the source empty.
//
// Equal, Compare and the Less family compare vectors element by element
// in lexicographic order.
//
// # Thread Safety
//
// Vector is not goroutine-safe. Callers sharing a vector between
// goroutines must guard every access, reads included, with their own lock.
//
// # Debug Assertions
//
// Index, Get, Set, Insert, Erase and PopBack do not validate positions
// against the length. Building with -tags vectordebug turns those
// preconditions into panics.
//
// # Metrics
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
package vector
