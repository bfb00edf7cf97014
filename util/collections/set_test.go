package collections

import "testing"

func TestSetAddRemove(t *testing.T) {
	set := NewSet(1, 2, 3)
	set.Add(3)
	set.Remove(1)
	set.Remove(42)

	if set.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", set.Len())
	}
	if set.Contains(1) || !set.Contains(2) || !set.Contains(3) {
		t.Errorf("unexpected contents: %v", set)
	}
}

func TestSetEqual(t *testing.T) {
	a := NewSet("a", "b", "c")

	if !a.Equal(NewSet("c", "b", "a")) {
		t.Errorf("Equal() should match the same elements in any order")
	}
	if a.Equal(NewSet("a", "b")) {
		t.Errorf("Equal() should not match sets of different size")
	}
	if NewSet("x").Equal(NewSet("y")) {
		t.Errorf("Equal() should not match disjoint sets")
	}
}
