package vector

import "testing"

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantNil  bool
	}{
		{"zero capacity", 0, true},
		{"single slot", 1, false},
		{"many slots", 64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBuffer[int](tt.capacity)
			if err != nil {
				t.Fatalf("NewBuffer(%d) error = %v", tt.capacity, err)
			}
			if b.Cap() != tt.capacity {
				t.Errorf("NewBuffer(%d) Cap = %d, want %d", tt.capacity, b.Cap(), tt.capacity)
			}
			if b.IsNil() != tt.wantNil {
				t.Errorf("NewBuffer(%d) IsNil = %v, want %v", tt.capacity, b.IsNil(), tt.wantNil)
			}
			for i, x := range b.Slots() {
				if x != 0 {
					t.Errorf("slot %d = %d, want 0", i, x)
				}
			}
		})
	}
}

func TestNewBufferNegative(t *testing.T) {
	if _, err := NewBuffer[int](-1); err == nil {
		t.Error("NewBuffer(-1) should fail")
	}
}

func TestBufferMove(t *testing.T) {
	b, _ := NewBuffer[int](4)
	*b.Slot(2) = 42

	moved := b.Move()
	if !b.IsNil() || b.Cap() != 0 {
		t.Errorf("source after Move: Cap = %d, IsNil = %v", b.Cap(), b.IsNil())
	}
	if moved.Cap() != 4 || *moved.Slot(2) != 42 {
		t.Errorf("moved buffer: Cap = %d, slot 2 = %d", moved.Cap(), *moved.Slot(2))
	}
}

func TestBufferRelease(t *testing.T) {
	b, _ := NewBuffer[string](2)
	*b.Slot(0) = "a"

	items := b.Release()
	if len(items) != 2 || items[0] != "a" {
		t.Errorf("Release() = %v", items)
	}
	if !b.IsNil() {
		t.Error("buffer should be empty after Release()")
	}
}

func TestBufferSwap(t *testing.T) {
	a, _ := NewBuffer[int](1)
	b, _ := NewBuffer[int](3)
	*a.Slot(0) = 1
	*b.Slot(0) = 3
	aBlock := &a.Slots()[0]

	a.Swap(&b)
	if a.Cap() != 3 || b.Cap() != 1 {
		t.Fatalf("after Swap: a.Cap = %d, b.Cap = %d", a.Cap(), b.Cap())
	}
	if *a.Slot(0) != 3 || *b.Slot(0) != 1 {
		t.Errorf("after Swap: a[0] = %d, b[0] = %d", *a.Slot(0), *b.Slot(0))
	}
	if &b.Slots()[0] != aBlock {
		t.Error("Swap should exchange blocks, not copy elements")
	}
}

func TestBufferSlotOutsideCapacityPanics(t *testing.T) {
	b, _ := NewBuffer[int](2)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for slot past capacity")
		}
	}()
	b.Slot(2)
}
