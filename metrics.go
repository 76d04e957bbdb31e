package vector

// Reallocations returns how many times v has moved its elements into a
// larger buffer. Appending N elements to an empty vector reallocates
// about log2(N) times.
func (v *Vector[T]) Reallocations() int {
	if v == nil {
		return 0
	}
	return v.reallocs
}

// BytesReserved returns the size in bytes of the allocated block.
func (v *Vector[T]) BytesReserved() int {
	return v.Cap() * int(elemSizeOf[T]())
}

// Utilization returns Len()/Cap() (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.Len()) / float64(capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.Len(),
		Cap:           v.Cap(),
		Reallocations: v.Reallocations(),
		ElemSize:      int(elemSizeOf[T]()),
		BytesReserved: v.BytesReserved(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Allocated slots
	Reallocations int     // Buffer replacements caused by growth
	ElemSize      int     // Bytes per slot
	BytesReserved int     // Cap * ElemSize
	Utilization   float64 // Ratio of Len to Cap (0.0-1.0)
}
