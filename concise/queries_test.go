package concise

import "testing"

func TestContainsAllAny(t *testing.T) {
	a := mustCollection(t, []int{1, 2, 3, 4, 5})
	b := mustCollection(t, []int{2, 3})
	c := mustCollection(t, []int{10, 20})

	if !a.ContainsAll(b) {
		t.Errorf("ContainsAll: expected true")
	}
	if a.ContainsAll(c) {
		t.Errorf("ContainsAll: expected false")
	}
	if a.ContainsAny(c) {
		t.Errorf("ContainsAny: expected false for disjoint sets")
	}
	if !a.ContainsAny(b) {
		t.Errorf("ContainsAny: expected true")
	}
}

func TestIntersectionSizeAndComplementSize(t *testing.T) {
	a := mustCollection(t, []int{1, 2, 3, 4, 5})
	b := mustCollection(t, []int{3, 4, 5, 6, 7})

	if got := a.IntersectionSize(b); got != 3 {
		t.Errorf("IntersectionSize = %d, want 3", got)
	}
	// ComplementSize is relative to [0, maxSetBit]: a has max 5, so its
	// complement within that span has 5+1-5 = 1 member (namely 0).
	if got := a.ComplementSize(); got != 1 {
		t.Errorf("ComplementSize = %d, want 1", got)
	}
}

func TestIntersectionSizeAcrossLongRuns(t *testing.T) {
	a := New()
	if err := a.Fill(0, 100000); err != nil {
		t.Fatal(err)
	}
	b := New()
	if err := b.Fill(50000, 150000); err != nil {
		t.Fatal(err)
	}
	if got := a.IntersectionSize(b); got != 50001 {
		t.Errorf("IntersectionSize across long runs = %d, want 50001", got)
	}
}

func TestCompressionRatios(t *testing.T) {
	s := mustCollection(t, []int{1, 2, 3})
	if r := s.BitmapCompressionRatio(); r <= 0 {
		t.Errorf("BitmapCompressionRatio = %v, want > 0", r)
	}
	if r := s.CollectionCompressionRatio(); r <= 0 {
		t.Errorf("CollectionCompressionRatio = %v, want > 0", r)
	}
}

func TestFirstLastEmpty(t *testing.T) {
	s := New()
	if _, err := s.First(); err != ErrEmpty {
		t.Errorf("First() on empty = %v, want ErrEmpty", err)
	}
	if _, err := s.Last(); err != ErrEmpty {
		t.Errorf("Last() on empty = %v, want ErrEmpty", err)
	}
}
