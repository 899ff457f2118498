package iteratable

import "testing"

func TestAddContains(t *testing.T) {
	s := NewSet[int](0)
	if s.Contains(1) {
		t.Fatalf("empty set contains 1")
	}
	if !s.Add(1) {
		t.Fatalf("first Add(1) should report true")
	}
	if s.Add(1) {
		t.Fatalf("second Add(1) should report false")
	}
	if !s.Contains(1) {
		t.Fatalf("set should contain 1")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	s := NewSet[int](0)
	s.Add(1)
	c := s.Copy()
	c.Add(2)
	if s.Contains(2) {
		t.Fatalf("mutating the copy must not affect the original")
	}
	if !c.Contains(1) || !c.Contains(2) {
		t.Fatalf("copy should contain both elements")
	}
}

func TestUnion(t *testing.T) {
	a := NewSet[int](0)
	a.Add(1)
	b := NewSet[int](1)
	b.Add(2)
	a.Union(b)
	if !a.Contains(1) || !a.Contains(2) {
		t.Fatalf("union should contain elements of both sets")
	}
}

func TestDifferenceNonDestructive(t *testing.T) {
	a := NewSet[int](0)
	a.Add(1)
	a.Add(2)
	b := NewSet[int](1)
	b.Add(1)
	d := a.Difference(b)
	if d.Size() != 1 || !d.Contains(2) {
		t.Fatalf("difference should contain only 2, got %v", d.Values())
	}
	if a.Size() != 2 {
		t.Fatalf("Difference must not mutate the receiver")
	}
}

func TestSubsetFilters(t *testing.T) {
	s := NewSet[int](0)
	s.Add(1)
	s.Add(2)
	s.Add(3)
	s.Subset(func(v int) bool { return v%2 == 0 })
	if s.Size() != 1 || !s.Contains(2) {
		t.Fatalf("subset should keep only even values, got %v", s.Values())
	}
}

func TestIterateOnceIsAFrozenSnapshot(t *testing.T) {
	s := NewSet[int](0)
	s.Add(1)
	s.Add(2)
	seen := 0
	s.IterateOnce()
	for s.Next() {
		_ = s.Item()
		s.Add(100) // added mid-pass, must not appear in this pass
		seen++
	}
	if seen != 2 {
		t.Fatalf("expected to see exactly the 2 original elements, saw %d", seen)
	}
	if !s.Contains(100) {
		t.Fatalf("the addition during iteration should still have taken effect")
	}
}
