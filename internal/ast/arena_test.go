package ast

import "testing"

func TestArenaAllocateGet(t *testing.T) {
	a := NewArena[int](4)
	first := a.Allocate(10)
	second := a.Allocate(20)
	if first != 1 || second != 2 {
		t.Fatalf("indices must be 1-based and sequential: %d, %d", first, second)
	}
	if *a.Get(first) != 10 || *a.Get(second) != 20 {
		t.Fatalf("stored values lost")
	}
	if a.Get(0) != nil {
		t.Fatalf("index 0 is the invalid sentinel")
	}
	if a.Get(99) != nil {
		t.Fatalf("out-of-range index must yield nil")
	}
}

func TestArenaResetKeepsCapacity(t *testing.T) {
	a := NewArena[int](0)
	for i := 0; i < 100; i++ {
		a.Allocate(i)
	}
	capBefore := cap(a.data)
	a.Reset()
	if a.Len() != 0 {
		t.Fatalf("reset did not empty the arena")
	}
	if cap(a.data) != capBefore {
		t.Fatalf("reset must keep backing storage: cap %d -> %d", capBefore, cap(a.data))
	}
	if idx := a.Allocate(7); idx != 1 {
		t.Fatalf("indices must restart after reset, got %d", idx)
	}
}

func TestArenaRelease(t *testing.T) {
	a := NewArena[int](8)
	a.Allocate(1)
	a.Release()
	if a.Len() != 0 || cap(a.data) != 0 {
		t.Fatalf("release must drop backing storage")
	}
}
