package byol

import "testing"

func TestPoolAllocator_ReusesFrames(t *testing.T) {
	pa := NewPoolAllocator()

	f1, err := pa.Allocate()
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	f1.admitted = true
	pa.Release(f1)

	f2, err := pa.Allocate()
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if f2.admitted {
		t.Fatal("expected Allocate to reset pooled frame state")
	}
}

func TestAlwaysFailAllocator(t *testing.T) {
	a := NewAlwaysFailAllocator(nil)
	if _, err := a.Allocate(); err == nil {
		t.Fatal("expected an error")
	}
}
