package concise

import "testing"

func TestFromSortedIterRejectsNonAscending(t *testing.T) {
	if _, err := FromSortedIter([]int{1, 1}); err == nil {
		t.Errorf("FromSortedIter([1,1]) should reject a repeated value")
	}
	if _, err := FromSortedIter([]int{3, 2}); err == nil {
		t.Errorf("FromSortedIter([3,2]) should reject a descending pair")
	}
}

func TestFromSortedIterRejectsOutOfRange(t *testing.T) {
	if _, err := FromSortedIter([]int{-1}); err == nil {
		t.Errorf("FromSortedIter([-1]) should reject a negative value")
	}
	if _, err := FromSortedIter([]int{maxAllowed + 1}); err == nil {
		t.Errorf("FromSortedIter should reject a value past maxAllowed")
	}
}

func TestFromCollectionSortsAndDedupes(t *testing.T) {
	s, err := FromCollection([]int{5, 1, 5, 3, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3, 5}
	if got := toSlice(s); !equalInts(got, want) {
		t.Errorf("FromCollection = %v, want %v", got, want)
	}
}

func TestFromCollectionEmpty(t *testing.T) {
	s, err := FromCollection(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsEmpty() {
		t.Errorf("FromCollection(nil) should be empty")
	}
}
