package vector

import (
	"testing"
)

// BenchmarkRealisticUsage compares the vector to the builtin slice in the
// access patterns it is meant for
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Append many elements, then drop them and reuse the storage
	b.Run("AppendReuse/Vector", func(b *testing.B) {
		var v Vector[int]
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				v.PushBack(j)
			}
			v.Clear()
		}
	})

	b.Run("AppendReuse/Builtin", func(b *testing.B) {
		var s []int
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				s = append(s, j)
			}
			s = s[:0]
		}
	})

	// Test 2: Fresh vector per iteration, growing from empty
	b.Run("GrowFromEmpty/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v Vector[int]
			for j := 0; j < 1000; j++ {
				v.PushBack(j)
			}
		}
	})

	b.Run("GrowFromEmpty/Reserved", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v, _ := NewReserved[int](Reserve(1000))
			for j := 0; j < 1000; j++ {
				v.PushBack(j)
			}
		}
	})

	// Test 3: Front insertion, worst case for shifting
	b.Run("FrontInsert/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v Vector[int]
			for j := 0; j < 256; j++ {
				v.Insert(0, j)
			}
		}
	})
}

func BenchmarkAccess(b *testing.B) {
	v, _ := NewSized[int](1024)

	b.Run("Index", func(b *testing.B) {
		sum := 0
		for i := 0; i < b.N; i++ {
			sum += *v.Index(i & 1023)
		}
		_ = sum
	})

	b.Run("At", func(b *testing.B) {
		sum := 0
		for i := 0; i < b.N; i++ {
			p, _ := v.At(i & 1023)
			sum += *p
		}
		_ = sum
	})
}
